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

// Package abi encodes typed parameter lists into contract call data.
//
// The contract ABI is strongly typed and static. Every parameter occupies one
// 32-byte slot in the head section of the call data; static values are written
// into their slot directly while dynamic values (string, bytes and arrays) are
// appended to the tail section and their slot holds an offset pointing at them.
// A function name, when present, turns into a 4-byte selector: the first four
// bytes of the Keccak-256 hash of the canonical signature "name(type1,type2)".
//
// abi 包将强类型的参数列表编码为合约调用数据。
//
// 每个参数在头部区域占用一个 32 字节槽位；静态值直接写入槽位，
// 动态值（string、bytes、数组）追加到尾部区域，槽位中保存指向它的偏移量。
// 设置函数名后，调用数据以 4 字节选择器开头，即规范签名的 Keccak-256 哈希的前 4 字节。
//
// Usage:
//
//	b, err := abi.NewBuilder().
//		Name("transfer").
//		AddAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
//	if err != nil {
//		return err
//	}
//	calldata := b.AddUint256(amount).Build()
package abi

//1. 头部与尾部
//head(X(i)) = enc(X(i))，若 X(i) 为静态类型
//head(X(i)) = 偏移量，若 X(i) 为动态类型，tail(X(i)) = enc(X(i))
//2. 函数选择器
//selector = keccak256("transfer(address,uint256)")[:4] = 0xa9059cbb
//3. 对齐
//所有数值左填充到 32 字节，bytes/string/function 右填充到 32 字节的整数倍。
