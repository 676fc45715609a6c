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
	"github.com/sunyihoo/go-calldata/common"
)

// wordSize is the width of a head slot and the alignment unit of the tail.
// wordSize 是头部槽位的宽度，也是尾部数据的对齐单位。
const wordSize = 32

// paddedLen rounds l up to the next multiple of the word size.
func paddedLen(l int) int {
	return (l + wordSize - 1) / wordSize * wordSize
}

// packNum packs the given non-negative number into a 32 byte big endian word.
// packNum 将非负整数打包为 32 字节大端序字。
func packNum(n int) []byte {
	word := make([]byte, wordSize)
	uint256.NewInt(uint64(n)).WriteToSlice(word)
	return word
}

// packSigned reduces z to a signed integer of the given width and returns its
// sign extended 32 byte two's complement form.
// packSigned 将 z 截断为指定位宽的有符号整数，并返回符号扩展后的 32 字节补码表示。
func packSigned(bits int, z *uint256.Int) [wordSize]byte {
	if bits < 256 {
		z.ExtendSign(z, uint256.NewInt(uint64(bits/8-1)))
	}
	return z.Bytes32()
}

// packUnsigned reduces z to an unsigned integer of the given width and returns
// its zero extended 32 byte form.
func packUnsigned(bits int, z *uint256.Int) [wordSize]byte {
	if bits < 256 {
		mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
		mask.SubUint64(mask, 1)
		z.And(z, mask)
	}
	return z.Bytes32()
}

// bigToUint256 converts v modulo 2^256, negative values becoming their two's
// complement. A nil v is treated as zero.
func bigToUint256(v *big.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	z, _ := uint256.FromBig(v)
	return z
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将给定的字节数据打包为 [L, V] 的规范表示形式。
// L 表示长度，V 表示右填充到 32 字节对齐的数据。
func packBytesSlice(bytes []byte) []byte {
	enc := make([]byte, wordSize+paddedLen(len(bytes)))
	uint256.NewInt(uint64(len(bytes))).WriteToSlice(enc[:wordSize])
	copy(enc[wordSize:], bytes)
	return enc
}

// packAddress left pads the 20 byte address to a full word.
func packAddress(a common.Address) [wordSize]byte {
	var word [wordSize]byte
	copy(word[:], common.LeftPadBytes(a[:], wordSize))
	return word
}

// packFunction right pads the 24 byte function reference to a full word.
func packFunction(f Function) [wordSize]byte {
	var word [wordSize]byte
	copy(word[:], common.RightPadBytes(f[:], wordSize))
	return word
}
