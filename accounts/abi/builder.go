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
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/go-calldata/crypto"
	"github.com/sunyihoo/go-calldata/log"
)

// selectorLength is the byte length of a function selector.
const selectorLength = 4

// Builder accumulates an ordered list of typed parameters and lays them out as
// contract call data. Every Add method appends to the builder and returns it so
// that calls chain. Build is terminal: the builder must not be used afterwards.
//
// Builders must be created with NewBuilder and are not safe for concurrent use.
//
// Builder 按顺序累积带类型的参数，并将其布局为合约调用数据。
// 所有 Add 方法追加参数后返回构建器本身以便链式调用；Build 之后构建器不可再使用。
type Builder struct {
	name    string
	hasName bool
	params  []Value
	built   bool
	logger  log.Logger // carries the function name once set
}

// NewBuilder returns an empty builder without a function name.
func NewBuilder() *Builder {
	return &Builder{logger: log.New()}
}

// Name sets the function name. With a name the call data starts with the
// 4-byte selector of the function signature.
func (b *Builder) Name(name string) *Builder {
	b.live()
	b.name, b.hasName = name, true
	b.logger = log.New("fn", name)
	return b
}

// Add appends an already typed value.
func (b *Builder) Add(v Value) *Builder {
	b.live()
	b.params = append(b.params, v)
	return b
}

// Len returns the number of parameters added so far.
func (b *Builder) Len() int { return len(b.params) }

// AddAddress converts v with ToAddress and appends it. On failure the
// conversion error is returned together with the unmodified builder, which
// stays usable.
// AddAddress 转换失败时返回错误，构建器保持不变且可继续使用。
func (b *Builder) AddAddress(v interface{}) (*Builder, error) {
	b.live()
	addr, err := ToAddress(v)
	if err != nil {
		b.logger.Trace("Rejected address parameter", "index", len(b.params), "err", err)
		return b, err
	}
	return b.Add(AddressValue(addr)), nil
}

// AddFunction converts v with ToFunction and appends it. On failure the
// conversion error is returned together with the unmodified builder.
func (b *Builder) AddFunction(v interface{}) (*Builder, error) {
	b.live()
	fn, err := ToFunction(v)
	if err != nil {
		b.logger.Trace("Rejected function parameter", "index", len(b.params), "err", err)
		return b, err
	}
	return b.Add(FunctionValue(fn)), nil
}

// AddAddressArray converts every element of the slice or array vs with
// ToAddress and appends them as a single address[] parameter. Nothing is
// appended unless all elements convert.
func (b *Builder) AddAddressArray(vs interface{}) (*Builder, error) {
	b.live()
	src, err := sliceElems("address", vs)
	if err != nil {
		return b, err
	}
	elems := make([]Value, len(src))
	for i, v := range src {
		addr, err := ToAddress(v)
		if err != nil {
			b.logger.Trace("Rejected address array element", "index", len(b.params), "element", i, "err", err)
			return b, &ArrayElementError{Index: i, Err: err}
		}
		elems[i] = AddressValue(addr)
	}
	return b.Add(ArrayValue(AddressTy, elems...)), nil
}

// AddFunctionArray converts every element of the slice or array vs with
// ToFunction and appends them as a single function[] parameter.
func (b *Builder) AddFunctionArray(vs interface{}) (*Builder, error) {
	b.live()
	src, err := sliceElems("function", vs)
	if err != nil {
		return b, err
	}
	elems := make([]Value, len(src))
	for i, v := range src {
		fn, err := ToFunction(v)
		if err != nil {
			b.logger.Trace("Rejected function array element", "index", len(b.params), "element", i, "err", err)
			return b, &ArrayElementError{Index: i, Err: err}
		}
		elems[i] = FunctionValue(fn)
	}
	return b.Add(ArrayValue(FunctionTy, elems...)), nil
}

// Sig returns the canonical signature of the function, e.g.
// "transfer(address,uint256)". It panics if no name was set.
// Sig 返回函数的规范签名；未设置函数名属于编程错误，直接 panic。
func (b *Builder) Sig() string {
	b.live()
	if !b.hasName {
		panic("abi: cannot calculate function signature without a name")
	}
	types := make([]string, len(b.params))
	for i, p := range b.params {
		types[i] = p.TypeName()
	}
	return b.name + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the first 4 bytes of the Keccak-256 hash of the function
// signature. It panics if no name was set.
// Selector 返回函数签名 Keccak-256 哈希的前 4 字节。
func (b *Builder) Selector() [selectorLength]byte {
	return SignatureSelector(b.Sig())
}

// SignatureSelector returns the selector of a canonical signature string.
func SignatureSelector(sig string) (sel [selectorLength]byte) {
	copy(sel[:], crypto.Keccak256([]byte(sig)))
	return sel
}

// Build lays out the call data and consumes the builder:
//
//	[selector, if named][one 32 byte head slot per parameter][dynamic payloads]
//
// A static parameter is written into its head slot. A dynamic parameter's slot
// holds the big endian offset of its payload, measured from the start of the
// buffer (selector included), and the payload is appended to the tail.
// Offsets beyond 64 bits are not representable.
//
// Build 布局调用数据并消耗构建器。静态参数直接写入槽位；动态参数的槽位保存
// 负载相对于缓冲区起始位置（含选择器）的大端序偏移量，负载追加到尾部。
func (b *Builder) Build() []byte {
	b.live()

	nameOffset := 0
	if b.hasName {
		nameOffset = selectorLength
	}
	totalLen := 0
	for _, p := range b.params {
		if p.IsDynamic() {
			totalLen += wordSize + p.RequiredByteLen()
		} else {
			totalLen += p.RequiredByteLen()
		}
	}
	buf := make([]byte, totalLen+nameOffset)

	offset := len(b.params)*wordSize + nameOffset
	for i, p := range b.params {
		slot := buf[i*wordSize+nameOffset : (i+1)*wordSize+nameOffset]
		dynamic, enc := p.ToBytes()
		if dynamic {
			uint256.NewInt(uint64(offset)).WriteToSlice(slot)
			copy(buf[offset:offset+len(enc)], enc)
			offset += len(enc)
		} else {
			copy(slot, enc)
		}
	}
	// Only the prefix is overwritten, the head starts right after it.
	// 只覆盖前 4 个字节，其后的头部区域保持不变。
	if b.hasName {
		sel := b.Selector()
		copy(buf[:selectorLength], sel[:])
	}
	b.logger.Trace("Encoded call data", "params", len(b.params), "size", len(buf))

	b.params, b.built = nil, true
	return buf
}

// live panics if the builder was already consumed by Build.
func (b *Builder) live() {
	if b.built {
		panic("abi: builder used after Build")
	}
}
