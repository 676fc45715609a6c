// Copyright 2014 The go-ethereum Authors
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

package crypto

import (
	"testing"

	"github.com/sunyihoo/go-calldata/common/hexutil"
	"github.com/stretchr/testify/assert"
)

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := hexutil.MustDecode("0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")

	assert.Equal(t, exp, Keccak256(msg))
	assert.Equal(t, exp, Keccak256Hash(msg).Bytes())
	assert.Equal(t, exp, Keccak256([]byte("a"), []byte("bc")), "multi-part input")
}

func TestKeccak256Empty(t *testing.T) {
	exp := hexutil.MustDecode("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	assert.Equal(t, exp, Keccak256())
	assert.Equal(t, exp, Keccak256Hash(nil).Bytes())
}

func TestHashData(t *testing.T) {
	kh := NewKeccakState()
	first := HashData(kh, []byte("transfer(address,uint256)"))
	// State is reset between calls.
	second := HashData(kh, []byte("transfer(address,uint256)"))

	assert.Equal(t, first, second)
	assert.Equal(t, "0xa9059cbb", hexutil.Encode(first[:4]))
}
