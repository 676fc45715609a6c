package hexutil

import (
	"bytes"
	"testing"
)

func checkError(t *testing.T, input string, got, want error) bool {
	if got == nil {
		if want != nil {
			t.Errorf("input %s: got no error, want %q", input, want)
			return false
		}
		return true
	}
	if want == nil {
		t.Errorf("input %s: unexpected error %q", input, got)
	} else if got.Error() != want.Error() {
		t.Errorf("input %s: got error %q, want %q", input, got, want)
	}
	return false
}

var decodeBytesTests = []struct {
	input   string
	want    []byte
	wantErr error
}{
	// invalid
	{input: ``, wantErr: ErrEmptyString},
	{input: `0`, wantErr: ErrMissingPrefix},
	{input: `0x0`, wantErr: ErrOddLength},
	{input: `0x023`, wantErr: ErrOddLength},
	{input: `0xxx`, wantErr: ErrSyntax},
	{input: `0x01zz01`, wantErr: ErrSyntax},
	// valid
	{input: `0x`, want: []byte{}},
	{input: `0X00`, want: []byte{0}},
	{input: `0x02`, want: []byte{0x02}},
	{input: `0xffffffffff`, want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
	{input: `0xa9059cbb`, want: []byte{0xa9, 0x05, 0x9c, 0xbb}},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if !checkError(t, test.input, err, test.wantErr) {
			continue
		}
		if !bytes.Equal(test.want, dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestEncode(t *testing.T) {
	for _, test := range decodeBytesTests {
		if test.wantErr != nil || test.input == `0X00` {
			continue
		}
		if enc := Encode(test.want); enc != test.input {
			t.Errorf("input %x: wrong encoding %s", test.want, enc)
		}
	}
}

func TestUnmarshalFixedUnprefixedText(t *testing.T) {
	tests := []struct {
		input   string
		want    []byte
		wantErr error
	}{
		{input: "0x2", wantErr: ErrOddLength},
		{input: "2", wantErr: ErrOddLength},
		{input: "4444", wantErr: errString("hex string has length 4, want 8 for x")},
		{input: "4444", wantErr: errString("hex string has length 4, want 8 for x")},
		// check that output is not modified for partially correct input
		{input: "444444gg", wantErr: ErrSyntax, want: []byte{0, 0, 0, 0}},
		{input: "0x444444gg", wantErr: ErrSyntax, want: []byte{0, 0, 0, 0}},
		// valid inputs
		{input: "44444444", want: []byte{0x44, 0x44, 0x44, 0x44}},
		{input: "0x44444444", want: []byte{0x44, 0x44, 0x44, 0x44}},
	}

	for _, test := range tests {
		out := make([]byte, 4)
		err := UnmarshalFixedUnprefixedText("x", []byte(test.input), out)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("%q: got no error, expected %q", test.input, test.wantErr)
		case err != nil && test.wantErr == nil:
			t.Errorf("%q: unexpected error %q", test.input, err)
		case err != nil && err.Error() != test.wantErr.Error():
			t.Errorf("%q: error mismatch: got %q, want %q", test.input, err, test.wantErr)
		}
		if test.want != nil && !bytes.Equal(out, test.want) {
			t.Errorf("%q: output mismatch: got %x, want %x", test.input, out, test.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
