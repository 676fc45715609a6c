// Copyright 2015 The go-ethereum Authors
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
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-calldata/common"
)

// Value is a parameter value tagged with its type. Static scalars carry their
// encoded word, string and bytes carry the raw payload and arrays carry their
// elements.
// Value 是带类型标记的参数值。
type Value struct {
	typ   Type
	word  [wordSize]byte // 静态标量的编码
	data  []byte         // string / bytes 的原始内容
	elems []Value        // 数组元素
}

// IntValue returns a signed integer value of the given kind. The value is
// truncated to the width of kind.
func IntValue(kind Kind, v int64) Value {
	mustFamily(kind, signedFamily)
	return Value{typ: Type{Kind: kind}, word: packSigned(kind.Bits(), new(uint256.Int).SetUint64(uint64(v)))}
}

// UintValue returns an unsigned integer value of the given kind. The value is
// truncated to the width of kind.
func UintValue(kind Kind, v uint64) Value {
	mustFamily(kind, unsignedFamily)
	return Value{typ: Type{Kind: kind}, word: packUnsigned(kind.Bits(), new(uint256.Int).SetUint64(v))}
}

// BigIntValue returns an integer value of a signed or unsigned kind taken from
// a big.Int, reduced modulo 2^N for an N bit kind. Signed kinds read the
// reduced value as two's complement. A nil v encodes as zero.
// BigIntValue 主要用于 128 位整数，Go 没有对应的内建类型。
func BigIntValue(kind Kind, v *big.Int) Value {
	z := bigToUint256(v)
	switch kind.info().family {
	case signedFamily:
		return Value{typ: Type{Kind: kind}, word: packSigned(kind.Bits(), z)}
	case unsignedFamily:
		return Value{typ: Type{Kind: kind}, word: packUnsigned(kind.Bits(), z)}
	}
	panic(fmt.Sprintf("abi: %v is not an integer kind", kind))
}

// WordValue returns an int256 or uint256 value whose encoding is the given
// 32 byte big endian block. A nil block encodes as zero.
func WordValue(kind Kind, v *[32]byte) Value {
	mustFamily(kind, wordFamily)
	val := Value{typ: Type{Kind: kind}}
	if v != nil {
		val.word = *v
	}
	return val
}

// Uint256Value returns a uint256 value. A nil v encodes as zero.
func Uint256Value(v *uint256.Int) Value {
	if v == nil {
		return Value{typ: Type{Kind: Uint256Ty}}
	}
	return Value{typ: Type{Kind: Uint256Ty}, word: v.Bytes32()}
}

// StringValue returns a UTF-8 text value.
func StringValue(s string) Value {
	return Value{typ: Type{Kind: StringTy}, data: []byte(s)}
}

// BytesValue returns a dynamic byte sequence value. The slice is copied.
func BytesValue(b []byte) Value {
	return Value{typ: Type{Kind: BytesTy}, data: common.CopyBytes(b)}
}

// AddressValue returns an address value.
func AddressValue(a common.Address) Value {
	return Value{typ: Type{Kind: AddressTy}, word: packAddress(a)}
}

// FunctionValue returns a function reference value.
func FunctionValue(f Function) Value {
	return Value{typ: Type{Kind: FunctionTy}, word: packFunction(f)}
}

// ArrayValue groups scalar values of a single kind into a one dimensional
// array value. Mixing kinds or nesting arrays is a programming error and panics.
// ArrayValue 将同一标量类型的值组合为一维数组；混合类型或嵌套数组会 panic。
func ArrayValue(kind Kind, elems ...Value) Value {
	for i, e := range elems {
		if e.typ != (Type{Kind: kind}) {
			panic(fmt.Sprintf("abi: array element %d has type %v, want %v", i, e.typ, kind))
		}
	}
	kind.info() // rejects unknown kinds for empty arrays
	return Value{typ: Type{Kind: kind, Array: true}, elems: append([]Value(nil), elems...)}
}

func mustFamily(kind Kind, f family) {
	if kind.info().family != f {
		panic(fmt.Sprintf("abi: unexpected kind %v", kind))
	}
}

// Type returns the type of the value.
func (v Value) Type() Type { return v.typ }

// TypeName returns the canonical ABI type spelling used in signature text.
func (v Value) TypeName() string { return v.typ.String() }

// IsDynamic reports whether the value is placed in the tail section.
func (v Value) IsDynamic() bool { return v.typ.IsDynamic() }

// RequiredByteLen returns the number of bytes the encoding occupies: the head
// slot width for static values, the full tail payload for dynamic ones.
// RequiredByteLen 返回编码所需的字节数：静态值为槽位宽度，动态值为完整的尾部负载长度。
func (v Value) RequiredByteLen() int {
	switch {
	case v.typ.Array:
		size := wordSize // 长度前缀
		for _, e := range v.elems {
			size += wordSize
			if e.IsDynamic() {
				size += e.RequiredByteLen()
			}
		}
		return size
	case v.typ.Kind.IsDynamic():
		return wordSize + paddedLen(len(v.data))
	default:
		return wordSize
	}
}

// ToBytes returns whether the value is dynamic together with its encoding:
// a single word for static values, the tail-ready payload for dynamic ones.
// ToBytes 返回值是否为动态类型以及它的编码。
func (v Value) ToBytes() (bool, []byte) {
	switch {
	case v.typ.Array:
		return true, v.packArray()
	case v.typ.Kind.IsDynamic():
		return true, packBytesSlice(v.data)
	default:
		word := v.word
		return false, word[:]
	}
}

// packArray encodes T[] as the element count followed by the elements. Static
// elements are written in place; dynamic elements get an offset, relative to
// the first element slot, and their payload is appended after all slots.
// packArray 编码 T[]：元素个数后跟元素；动态元素使用相对于第一个元素槽位的偏移量。
func (v Value) packArray() []byte {
	ret := make([]byte, 0, v.RequiredByteLen())
	ret = append(ret, packNum(len(v.elems))...)

	if !v.typ.Kind.IsDynamic() {
		for _, e := range v.elems {
			ret = append(ret, e.word[:]...)
		}
		return ret
	}
	offset := len(v.elems) * wordSize
	var tail []byte
	for _, e := range v.elems {
		_, enc := e.ToBytes()
		ret = append(ret, packNum(offset)...)
		offset += len(enc)
		tail = append(tail, enc...)
	}
	return append(ret, tail...)
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	_, enc := v.ToBytes()
	return fmt.Sprintf("%v:%x", v.typ, enc)
}
