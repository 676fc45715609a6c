// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/go-calldata/common"
	"github.com/sunyihoo/go-calldata/common/hexutil"
	"github.com/sunyihoo/go-calldata/crypto"
	"github.com/sunyihoo/go-calldata/log"
)

// mixedBuilder returns a builder exercising static, dynamic and array parameters.
func mixedBuilder(name string) *Builder {
	b := NewBuilder()
	if name != "" {
		b.Name(name)
	}
	b, err := b.AddI8(-3).
		AddString("hello").
		AddU64(7).
		AddBytes(bytes.Repeat([]byte{0xab}, 40)).
		AddU32Array([]uint32{1, 2, 3}).
		AddStringArray([]string{"a", "bc"}).
		AddI128(big.NewInt(-5)).
		AddAddress(testAddrHex)
	if err != nil {
		panic(err)
	}
	return b
}

// checkLayout verifies the head/tail invariants of data built from params.
func checkLayout(t *testing.T, data []byte, params []Value, nameOffset int) {
	t.Helper()
	defer func() {
		if t.Failed() {
			t.Logf("call data:\n%s", spew.Sdump(data))
		}
	}()
	total := nameOffset
	for _, p := range params {
		if p.IsDynamic() {
			total += wordSize
		}
		total += p.RequiredByteLen()
	}
	require.Len(t, data, total)

	next := len(params)*wordSize + nameOffset
	for i, p := range params {
		slot := data[i*wordSize+nameOffset : (i+1)*wordSize+nameOffset]
		dynamic, enc := p.ToBytes()
		if !dynamic {
			assert.Equal(t, enc, slot, "static slot %d", i)
			continue
		}
		assert.Equal(t, make([]byte, 24), slot[:24], "offset high bytes of slot %d", i)
		offset := int(binary.BigEndian.Uint64(slot[24:]))
		assert.Equal(t, next, offset, "offset of slot %d", i)
		assert.Equal(t, enc, data[offset:offset+len(enc)], "tail of slot %d", i)
		next += len(enc)
	}
	assert.Equal(t, len(data), next)
}

func TestBuildTransfer(t *testing.T) {
	b, err := NewBuilder().Name("transfer").AddAddress(testAddrHex)
	require.NoError(t, err)
	b.AddUint256(uint256.NewInt(1000))

	assert.Equal(t, "transfer(address,uint256)", b.Sig())
	sel := b.Selector()
	assert.Equal(t, crypto.Keccak256([]byte("transfer(address,uint256)"))[:4], sel[:])
	assert.Equal(t, "0xa9059cbb", hexutil.Encode(sel[:]))

	want := "0xa9059cbb" +
		"0000000000000000000000005aaeb6053f3e94c9b9a09f33669435e7ef1beaed" +
		"00000000000000000000000000000000000000000000000000000000000003e8"
	assert.Equal(t, want, hexutil.Encode(b.Build()))
}

func TestBuildSingleBytes(t *testing.T) {
	data := NewBuilder().AddBytes([]byte{1, 2, 3}).Build()

	require.Len(t, data, 32+32+32)
	assert.Equal(t, uint64(32), binary.BigEndian.Uint64(data[24:32]))
	assert.Equal(t, make([]byte, 24), data[:24])
	assert.Equal(t, wordOf(0, 3), data[32:64])
	assert.Equal(t, append([]byte{1, 2, 3}, make([]byte, 29)...), data[64:96])
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, NewBuilder().Build())

	data := NewBuilder().Name("ping").Build()
	sel := SignatureSelector("ping()")
	assert.Equal(t, sel[:], data)
}

func TestBuildLayout(t *testing.T) {
	for _, name := range []string{"", "mixed"} {
		b := mixedBuilder(name)
		params := append([]Value(nil), b.params...)

		nameOffset := 0
		if name != "" {
			nameOffset = selectorLength
		}
		checkLayout(t, b.Build(), params, nameOffset)
	}
}

func TestBuildOffsets(t *testing.T) {
	data := NewBuilder().
		AddString("hello").
		AddU8(7).
		AddBytes(bytes.Repeat([]byte{0xab}, 40)).
		Build()

	require.Len(t, data, 96+64+96)
	assert.Equal(t, wordOf(0, 96), data[0:32])
	assert.Equal(t, wordOf(0, 7), data[32:64])
	assert.Equal(t, wordOf(0, 160), data[64:96])
	assert.Equal(t, wordOf(0, 5), data[96:128])
	assert.Equal(t, []byte("hello"), data[128:133])
	assert.Equal(t, wordOf(0, 40), data[160:192])
}

func TestBuildNamedOffsets(t *testing.T) {
	data := NewBuilder().Name("set").AddU8(1).AddString("x").Build()

	require.Len(t, data, 4+64+64)
	// Offsets are measured from the start of the buffer, selector included.
	assert.Equal(t, wordOf(0, 4+64), data[36:68])
	assert.Equal(t, wordOf(0, 1), data[68:100])
}

// Writing the selector must only touch the first four bytes.
func TestSelectorOnlyOverwritesPrefix(t *testing.T) {
	static := func(name string) []byte {
		b := NewBuilder()
		if name != "" {
			b.Name(name)
		}
		return b.AddU64(0xdeadbeef).AddI32(-1).AddU8(9).Build()
	}
	named, plain := static("f"), static("")

	require.Len(t, named, len(plain)+selectorLength)
	sel := SignatureSelector("f(uint64,int32,uint8)")
	assert.Equal(t, sel[:], named[:selectorLength])
	assert.Equal(t, plain, named[selectorLength:])
}

func TestBuildDeterministic(t *testing.T) {
	assert.Equal(t, mixedBuilder("mixed").Build(), mixedBuilder("mixed").Build())
	assert.Equal(t, mixedBuilder("").Build(), mixedBuilder("").Build())
}

func TestSelectorIgnoresValues(t *testing.T) {
	a := NewBuilder().Name("f").AddU32(1).AddString("a").AddBytesArray([][]byte{{1}})
	b := NewBuilder().Name("f").AddU32(99).AddString("something else").AddBytesArray(nil)

	assert.Equal(t, a.Sig(), b.Sig())
	assert.Equal(t, a.Selector(), b.Selector())
	assert.Equal(t, a.Selector(), a.Selector())

	c := NewBuilder().Name("f").AddU64(1).AddString("a").AddBytesArray(nil)
	assert.NotEqual(t, a.Selector(), c.Selector())
}

func TestSigAllTypes(t *testing.T) {
	var w [32]byte
	fn := NewFunction(common.HexToAddress(testAddrHex), [4]byte{1, 2, 3, 4})

	b := NewBuilder().Name("all").
		AddI8(1).AddU8(1).AddI16(1).AddU16(1).AddI32(1).AddU32(1).AddI64(1).AddU64(1).
		AddI128(big.NewInt(1)).AddU128(big.NewInt(1)).AddI256(&w).AddU256(&w).
		AddString("s").AddBytes([]byte{1})
	b, err := b.AddAddress(testAddrHex)
	require.NoError(t, err)
	b, err = b.AddFunction(fn)
	require.NoError(t, err)

	b.AddI8Array(nil).AddU8Array(nil).AddI16Array(nil).AddU16Array(nil).
		AddI32Array(nil).AddU32Array(nil).AddI64Array(nil).AddU64Array(nil).
		AddI128Array(nil).AddU128Array(nil).AddI256Array(nil).AddU256Array(nil).
		AddUint256Array(nil).AddStringArray(nil).AddBytesArray(nil)
	b, err = b.AddAddressArray([]string{testAddrHex})
	require.NoError(t, err)
	b, err = b.AddFunctionArray([]Function{fn, fn})
	require.NoError(t, err)

	want := "all(int8,uint8,int16,uint16,int32,uint32,int64,uint64,int128,uint128,int256,uint256," +
		"string,bytes,address,function," +
		"int8[],uint8[],int16[],uint16[],int32[],uint32[],int64[],uint64[],int128[],uint128[],int256[],uint256[]," +
		"uint256[],string[],bytes[],address[],function[])"
	assert.Equal(t, want, b.Sig())
	assert.Equal(t, 33, b.Len())

	params := append([]Value(nil), b.params...)
	checkLayout(t, b.Build(), params, selectorLength)
}

func TestAddAddressFailure(t *testing.T) {
	b := NewBuilder().Name("f").AddU8(1)

	got, err := b.AddAddress("0x1234")
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Same(t, b, got)
	assert.Equal(t, 1, b.Len())

	_, err = b.AddFunction(12)
	require.ErrorIs(t, err, ErrUnsupportedSource)
	assert.Equal(t, 1, b.Len())

	// The builder stays usable after a failed conversion.
	b, err = b.AddAddress(common.HexToAddress(testAddrHex))
	require.NoError(t, err)
	assert.Equal(t, "f(uint8,address)", b.Sig())
}

func TestAddArrayFailure(t *testing.T) {
	b := NewBuilder()

	_, err := b.AddAddressArray([]string{testAddrHex, "0xbad"})
	require.ErrorIs(t, err, ErrInvalidLength)
	var elemErr *ArrayElementError
	require.ErrorAs(t, err, &elemErr)
	assert.Equal(t, 1, elemErr.Index)
	assert.Equal(t, 0, b.Len())

	_, err = b.AddFunctionArray("not a slice")
	require.ErrorIs(t, err, ErrUnsupportedSource)
	assert.Equal(t, 0, b.Len())
}

func TestContractViolations(t *testing.T) {
	assert.PanicsWithValue(t, "abi: cannot calculate function signature without a name", func() {
		NewBuilder().AddU8(1).Selector()
	})
	assert.PanicsWithValue(t, "abi: cannot calculate function signature without a name", func() {
		NewBuilder().Sig()
	})

	b := NewBuilder().AddU8(1)
	b.Build()
	assert.PanicsWithValue(t, "abi: builder used after Build", func() { b.Build() })
	assert.PanicsWithValue(t, "abi: builder used after Build", func() { b.AddU8(2) })
	assert.PanicsWithValue(t, "abi: builder used after Build", func() { b.Name("late") })
}

func TestBuildLogsFunctionName(t *testing.T) {
	out := new(bytes.Buffer)
	defer log.SetHandler(log.SetHandler(log.NewTerminalHandler(out, log.LevelTrace, false)))

	b := NewBuilder().Name("transfer")
	_, err := b.AddAddress("0x1234")
	require.Error(t, err)
	b.AddU8(1).Build()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, out.String())
	assert.Contains(t, lines[0], "Rejected address parameter")
	assert.Contains(t, lines[1], "Encoded call data")
	assert.Contains(t, lines[1], "size=36")
	for _, line := range lines {
		assert.Contains(t, line, "fn=transfer")
	}
}
