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
	"math/big"

	"github.com/holiman/uint256"
)

// The typed adders below are thin wrappers over the kinds table: each maps a Go
// type onto its ABI kind and has a single-dimension array counterpart.
// 以下按类型的 Add 方法只是 kinds 表的薄封装：每个 Go 类型映射到一个 ABI 类型，并有对应的一维数组版本。

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signed[T signedInt](kind Kind) func(T) Value {
	return func(v T) Value { return IntValue(kind, int64(v)) }
}

func unsigned[T unsignedInt](kind Kind) func(T) Value {
	return func(v T) Value { return UintValue(kind, uint64(v)) }
}

func bigInt(kind Kind) func(*big.Int) Value {
	return func(v *big.Int) Value { return BigIntValue(kind, v) }
}

func word(kind Kind) func(*[32]byte) Value {
	return func(v *[32]byte) Value { return WordValue(kind, v) }
}

// arrayOf wraps every element with its scalar tag and groups them as kind[].
func arrayOf[T any](kind Kind, vs []T, wrap func(T) Value) Value {
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = wrap(v)
	}
	return ArrayValue(kind, elems...)
}

// AddI8 appends an int8 parameter.
func (b *Builder) AddI8(v int8) *Builder { return b.Add(IntValue(Int8Ty, int64(v))) }

// AddI8Array appends an int8[] parameter.
func (b *Builder) AddI8Array(vs []int8) *Builder {
	return b.Add(arrayOf(Int8Ty, vs, signed[int8](Int8Ty)))
}

// AddU8 appends a uint8 parameter.
func (b *Builder) AddU8(v uint8) *Builder { return b.Add(UintValue(Uint8Ty, uint64(v))) }

// AddU8Array appends a uint8[] parameter.
func (b *Builder) AddU8Array(vs []uint8) *Builder {
	return b.Add(arrayOf(Uint8Ty, vs, unsigned[uint8](Uint8Ty)))
}

// AddI16 appends an int16 parameter.
func (b *Builder) AddI16(v int16) *Builder { return b.Add(IntValue(Int16Ty, int64(v))) }

// AddI16Array appends an int16[] parameter.
func (b *Builder) AddI16Array(vs []int16) *Builder {
	return b.Add(arrayOf(Int16Ty, vs, signed[int16](Int16Ty)))
}

// AddU16 appends a uint16 parameter.
func (b *Builder) AddU16(v uint16) *Builder { return b.Add(UintValue(Uint16Ty, uint64(v))) }

// AddU16Array appends a uint16[] parameter.
func (b *Builder) AddU16Array(vs []uint16) *Builder {
	return b.Add(arrayOf(Uint16Ty, vs, unsigned[uint16](Uint16Ty)))
}

// AddI32 appends an int32 parameter.
func (b *Builder) AddI32(v int32) *Builder { return b.Add(IntValue(Int32Ty, int64(v))) }

// AddI32Array appends an int32[] parameter.
func (b *Builder) AddI32Array(vs []int32) *Builder {
	return b.Add(arrayOf(Int32Ty, vs, signed[int32](Int32Ty)))
}

// AddU32 appends a uint32 parameter.
func (b *Builder) AddU32(v uint32) *Builder { return b.Add(UintValue(Uint32Ty, uint64(v))) }

// AddU32Array appends a uint32[] parameter.
func (b *Builder) AddU32Array(vs []uint32) *Builder {
	return b.Add(arrayOf(Uint32Ty, vs, unsigned[uint32](Uint32Ty)))
}

// AddI64 appends an int64 parameter.
func (b *Builder) AddI64(v int64) *Builder { return b.Add(IntValue(Int64Ty, v)) }

// AddI64Array appends an int64[] parameter.
func (b *Builder) AddI64Array(vs []int64) *Builder {
	return b.Add(arrayOf(Int64Ty, vs, signed[int64](Int64Ty)))
}

// AddU64 appends a uint64 parameter.
func (b *Builder) AddU64(v uint64) *Builder { return b.Add(UintValue(Uint64Ty, v)) }

// AddU64Array appends a uint64[] parameter.
func (b *Builder) AddU64Array(vs []uint64) *Builder {
	return b.Add(arrayOf(Uint64Ty, vs, unsigned[uint64](Uint64Ty)))
}

// AddI128 appends an int128 parameter. v is reduced modulo 2^128 and the
// result read as two's complement, so 2^127 encodes as -2^127 and any multiple
// of 2^128 encodes as zero. A nil v encodes as zero.
// Go 没有 128 位整数，因此使用 *big.Int 并按模 2^128 截断。
func (b *Builder) AddI128(v *big.Int) *Builder { return b.Add(BigIntValue(Int128Ty, v)) }

// AddI128Array appends an int128[] parameter.
func (b *Builder) AddI128Array(vs []*big.Int) *Builder {
	return b.Add(arrayOf(Int128Ty, vs, bigInt(Int128Ty)))
}

// AddU128 appends a uint128 parameter. v is reduced modulo 2^128, so negative
// values encode as their two's complement. A nil v encodes as zero.
func (b *Builder) AddU128(v *big.Int) *Builder { return b.Add(BigIntValue(Uint128Ty, v)) }

// AddU128Array appends a uint128[] parameter.
func (b *Builder) AddU128Array(vs []*big.Int) *Builder {
	return b.Add(arrayOf(Uint128Ty, vs, bigInt(Uint128Ty)))
}

// AddI256 appends an int256 parameter given as its 32 byte two's complement
// big endian encoding.
func (b *Builder) AddI256(v *[32]byte) *Builder { return b.Add(WordValue(Int256Ty, v)) }

// AddI256Array appends an int256[] parameter.
func (b *Builder) AddI256Array(vs []*[32]byte) *Builder {
	return b.Add(arrayOf(Int256Ty, vs, word(Int256Ty)))
}

// AddU256 appends a uint256 parameter given as its 32 byte big endian encoding.
func (b *Builder) AddU256(v *[32]byte) *Builder { return b.Add(WordValue(Uint256Ty, v)) }

// AddU256Array appends a uint256[] parameter.
func (b *Builder) AddU256Array(vs []*[32]byte) *Builder {
	return b.Add(arrayOf(Uint256Ty, vs, word(Uint256Ty)))
}

// AddUint256 appends a uint256 parameter.
func (b *Builder) AddUint256(v *uint256.Int) *Builder { return b.Add(Uint256Value(v)) }

// AddUint256Array appends a uint256[] parameter.
func (b *Builder) AddUint256Array(vs []*uint256.Int) *Builder {
	return b.Add(arrayOf(Uint256Ty, vs, Uint256Value))
}

// AddString appends a string parameter.
func (b *Builder) AddString(v string) *Builder { return b.Add(StringValue(v)) }

// AddStringArray appends a string[] parameter.
func (b *Builder) AddStringArray(vs []string) *Builder {
	return b.Add(arrayOf(StringTy, vs, StringValue))
}

// AddBytes appends a bytes parameter.
func (b *Builder) AddBytes(v []byte) *Builder { return b.Add(BytesValue(v)) }

// AddBytesArray appends a bytes[] parameter.
func (b *Builder) AddBytesArray(vs [][]byte) *Builder {
	return b.Add(arrayOf(BytesTy, vs, BytesValue))
}
