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

import "fmt"

// Kind enumerates the scalar parameter types that can be encoded.
// Kind 枚举可编码的标量参数类型。
type Kind byte

// Type enumerator
const (
	Int8Ty Kind = iota
	Uint8Ty
	Int16Ty
	Uint16Ty
	Int32Ty
	Uint32Ty
	Int64Ty
	Uint64Ty
	Int128Ty
	Uint128Ty
	Int256Ty
	Uint256Ty
	StringTy
	BytesTy
	AddressTy
	FunctionTy

	numKinds
)

type family byte

const (
	signedFamily   family = iota // 有符号整数：符号扩展到 32 字节
	unsignedFamily               // 无符号整数：零扩展到 32 字节
	wordFamily                   // 调用方提供的 32 字节块，原样写入
	bytesFamily                  // 长度前缀 + 右填充的数据（动态）
	addressFamily                // 20 字节，左填充
	functionFamily               // 24 字节，右填充
)

// kindInfo describes how a scalar kind is named and encoded.
type kindInfo struct {
	name    string // canonical ABI spelling used in signatures
	bits    int    // value width, 0 for non-numeric kinds
	family  family
	dynamic bool
}

// kinds is the static table backing every scalar kind. The builder's typed
// adders and the value constructors all resolve names and encodings here.
// kinds 是所有标量类型的静态表：规范名称、位宽、编码方式、是否动态。
var kinds = [numKinds]kindInfo{
	Int8Ty:     {"int8", 8, signedFamily, false},
	Uint8Ty:    {"uint8", 8, unsignedFamily, false},
	Int16Ty:    {"int16", 16, signedFamily, false},
	Uint16Ty:   {"uint16", 16, unsignedFamily, false},
	Int32Ty:    {"int32", 32, signedFamily, false},
	Uint32Ty:   {"uint32", 32, unsignedFamily, false},
	Int64Ty:    {"int64", 64, signedFamily, false},
	Uint64Ty:   {"uint64", 64, unsignedFamily, false},
	Int128Ty:   {"int128", 128, signedFamily, false},
	Uint128Ty:  {"uint128", 128, unsignedFamily, false},
	Int256Ty:   {"int256", 256, wordFamily, false},
	Uint256Ty:  {"uint256", 256, wordFamily, false},
	StringTy:   {"string", 0, bytesFamily, true},
	BytesTy:    {"bytes", 0, bytesFamily, true},
	AddressTy:  {"address", 160, addressFamily, false},
	FunctionTy: {"function", 192, functionFamily, false},
}

func (k Kind) info() kindInfo {
	if k >= numKinds {
		panic(fmt.Sprintf("abi: invalid kind %d", k))
	}
	return kinds[k]
}

// String returns the canonical ABI name of the kind, e.g. "uint256".
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kinds[k].name
}

// Bits returns the bit width of numeric, address and function kinds, 0 otherwise.
func (k Kind) Bits() int { return k.info().bits }

// IsDynamic reports whether values of the scalar kind are placed in the tail.
func (k Kind) IsDynamic() bool { return k.info().dynamic }

// Type is the type of a single parameter: either a scalar kind or a
// single-dimension homogeneous array of that kind.
// Type 表示单个参数的类型：标量类型，或该标量的一维同构数组（T[]）。
type Type struct {
	Kind  Kind
	Array bool
}

// String implements Stringer and yields the canonical ABI spelling used
// when deriving signatures, e.g. "uint32[]".
// String 返回用于派生签名的规范类型名称。
func (t Type) String() string {
	if t.Array {
		return t.Kind.String() + "[]"
	}
	return t.Kind.String()
}

// IsDynamic returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// IsDynamic 如果类型是动态的，则返回 true。
func (t Type) IsDynamic() bool {
	return t.Array || t.Kind.IsDynamic()
}
