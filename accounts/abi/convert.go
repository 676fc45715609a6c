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
	"errors"
	"fmt"
	"reflect"

	"github.com/sunyihoo/go-calldata/common"
	"github.com/sunyihoo/go-calldata/common/hexutil"
)

// FunctionLength is the byte length of an external function reference:
// a 20 byte contract address followed by a 4 byte selector.
const FunctionLength = common.AddressLength + 4

// Function is an external function reference as passed in the "function" ABI type.
// Function 是外部函数引用：20 字节合约地址 + 4 字节函数选择器。
type Function [FunctionLength]byte

// NewFunction returns the reference to the function identified by selector on
// the contract at addr.
func NewFunction(addr common.Address, selector [4]byte) Function {
	var f Function
	copy(f[:common.AddressLength], addr[:])
	copy(f[common.AddressLength:], selector[:])
	return f
}

// Address returns the contract address part of the reference.
func (f Function) Address() common.Address {
	return common.BytesToAddress(f[:common.AddressLength])
}

// Selector returns the selector part of the reference.
func (f Function) Selector() (sel [4]byte) {
	copy(sel[:], f[common.AddressLength:])
	return sel
}

// Hex returns the 0x-prefixed hex form of the reference.
func (f Function) Hex() string { return hexutil.Encode(f[:]) }

var (
	// ErrInvalidLength is returned when a source value has the wrong byte or digit count.
	// ErrInvalidLength 在源值的字节数或十六进制位数不正确时返回。
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidHex is returned when a textual source value is not valid hex.
	// ErrInvalidHex 在文本形式的源值不是合法十六进制时返回。
	ErrInvalidHex = errors.New("invalid hex")

	// ErrUnsupportedSource is returned when the source value's type has no conversion.
	// ErrUnsupportedSource 在源值类型无法转换时返回。
	ErrUnsupportedSource = errors.New("unsupported source type")
)

// ConversionError reports a source value that could not be converted into an
// address or function reference.
// ConversionError 表示源值无法转换为地址或函数引用。
type ConversionError struct {
	Target string // "address" or "function"
	Source interface{}
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("abi: cannot convert %T to %s: %v", e.Source, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// AddressConverter is implemented by domain types that know how to produce an address.
type AddressConverter interface {
	ToAddress() (common.Address, error)
}

// FunctionConverter is implemented by domain types that know how to produce a
// function reference.
type FunctionConverter interface {
	ToFunction() (Function, error)
}

// ToAddress converts v into an address. Supported sources are common.Address,
// *common.Address, [20]byte, []byte of exactly 20 bytes, a hex string of exactly
// 40 digits with optional 0x prefix and any AddressConverter.
// ToAddress 将 v 转换为地址；失败时返回 *ConversionError。
func ToAddress(v interface{}) (common.Address, error) {
	var (
		addr common.Address
		err  error
	)
	switch v := v.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v == nil {
			err = ErrUnsupportedSource
			break
		}
		return *v, nil
	case [common.AddressLength]byte:
		return common.Address(v), nil
	case []byte:
		err = decodeFixed(v, addr[:])
	case string:
		err = decodeHexFixed("address", v, addr[:])
	case AddressConverter:
		addr, err = v.ToAddress()
	default:
		err = ErrUnsupportedSource
	}
	if err != nil {
		return common.Address{}, &ConversionError{Target: "address", Source: v, Err: err}
	}
	return addr, nil
}

// ToFunction converts v into a function reference. Supported sources are
// Function, [24]byte, []byte of exactly 24 bytes, a hex string of exactly 48
// digits with optional 0x prefix and any FunctionConverter.
func ToFunction(v interface{}) (Function, error) {
	var (
		fn  Function
		err error
	)
	switch v := v.(type) {
	case Function:
		return v, nil
	case [FunctionLength]byte:
		return Function(v), nil
	case []byte:
		err = decodeFixed(v, fn[:])
	case string:
		err = decodeHexFixed("function", v, fn[:])
	case FunctionConverter:
		fn, err = v.ToFunction()
	default:
		err = ErrUnsupportedSource
	}
	if err != nil {
		return Function{}, &ConversionError{Target: "function", Source: v, Err: err}
	}
	return fn, nil
}

// decodeFixed copies src into out, requiring the lengths to match.
func decodeFixed(src, out []byte) error {
	if len(src) != len(out) {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrInvalidLength, len(src), len(out))
	}
	copy(out, src)
	return nil
}

// decodeHexFixed decodes s, with or without 0x prefix, into out. The digit
// count must be exactly twice the length of out; out is left untouched on error.
func decodeHexFixed(target, s string, out []byte) error {
	err := hexutil.UnmarshalFixedUnprefixedText(target, []byte(s), out)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hexutil.ErrSyntax):
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
}

// sliceElems returns the elements of a slice or array value for the array
// conversions of the builder.
// sliceElems 返回切片或数组的元素，用于构建器的地址/函数数组转换。
func sliceElems(target string, v interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &ConversionError{Target: target + "[]", Source: v, Err: ErrUnsupportedSource}
	}
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}

// ArrayElementError wraps the conversion failure of a single array element.
type ArrayElementError struct {
	Index int
	Err   error
}

func (e *ArrayElementError) Error() string {
	return fmt.Sprintf("abi: array element %d: %v", e.Index, e.Err)
}

func (e *ArrayElementError) Unwrap() error { return e.Err }
