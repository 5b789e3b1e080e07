// Copyright 2022 The go-ethereum Authors
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
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/CodeSandwich/ethers-go/common"
	"github.com/CodeSandwich/ethers-go/common/math"
)

// EncodePacked implements the non-standard packed encoding available in solidity.
// Since encoding is ambigious there is no decoding function.
// See https://docs.soliditylang.org/en/latest/abi-spec.html#non-standard-packed-mode
//
// Fixed size array arguments consume one value per element from values. The
// elements of arrays and slices are padded to full words even when packed.
func EncodePacked(args []Type, values []interface{}) ([]byte, error) {
	enc := make([]byte, 0)
	idx := 0
	for _, arg := range args {
		switch arg.T {
		case TupleTy:
			return []byte{}, errors.New("Not implemented")
		case ArrayTy:
			for i := 0; i < arg.Size; i++ {
				if idx >= len(values) {
					return []byte{}, fmt.Errorf("Not enough values for type %v", arg)
				}
				packed, err := arg.Elem.pack(reflect.ValueOf(values[idx]))
				if err != nil {
					return []byte{}, err
				}
				enc = append(enc, packed...)
				idx++
			}
		case SliceTy:
			if idx >= len(values) {
				return []byte{}, fmt.Errorf("Not enough values for type %v", arg)
			}
			value := indirect(reflect.ValueOf(values[idx]))
			if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
				return []byte{}, fmt.Errorf("Slice type given a %v value", value.Kind())
			}
			for i := 0; i < value.Len(); i++ {
				packed, err := arg.Elem.pack(value.Index(i))
				if err != nil {
					return []byte{}, err
				}
				enc = append(enc, packed...)
			}
			idx++
		default:
			if idx >= len(values) {
				return []byte{}, fmt.Errorf("Not enough values for type %v", arg)
			}
			packed, err := encodePackElement(arg, reflect.ValueOf(values[idx]))
			if err != nil {
				return []byte{}, err
			}
			enc = append(enc, packed...)
			idx++
		}
	}
	return enc, nil
}

func encodePackElement(t Type, value reflect.Value) ([]byte, error) {
	value = indirect(value)

	switch t.T {
	case IntTy, UintTy:
		return encodePackedNum(t, value), nil
	case StringTy:
		return []byte(value.String()), nil
	case AddressTy:
		if value.Kind() == reflect.Array {
			value = mustArrayToByteSlice(value)
		}
		return encodePackedByteSlice(t.Size, value.Bytes()), nil
	case FixedBytesTy:
		if value.Kind() == reflect.Array {
			value = mustArrayToByteSlice(value)
		}
		return common.RightPadBytes(value.Bytes(), t.Size)[:t.Size], nil
	case BoolTy:
		if value.Bool() {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case BytesTy:
		if value.Kind() == reflect.Array {
			value = mustArrayToByteSlice(value)
		}
		if value.Type() != reflect.TypeOf([]byte{}) {
			return []byte{}, errors.New("Bytes type is neither slice nor array")
		}
		return value.Bytes(), nil
	default:
		return []byte{}, fmt.Errorf("Could not encode pack element, unknown type: %v", t.T)
	}
}

func encodePackedNum(t Type, value reflect.Value) []byte {
	bytes := make([]byte, 8)
	switch kind := value.Kind(); kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		binary.BigEndian.PutUint64(bytes, value.Uint())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.BigEndian.PutUint64(bytes, uint64(value.Int()))
	case reflect.Ptr:
		bytes = math.U256Bytes(new(big.Int).Set(value.Interface().(*big.Int)))
	default:
		panic("abi: fatal error")
	}
	return encodePackedByteSlice(t.Size/8, bytes)
}

// encodePackedByteSlice pads or truncates value on the left to exactly size
// bytes. A zero size keeps the value as is.
func encodePackedByteSlice(size int, value []byte) []byte {
	if size == 0 {
		size = len(value)
	}
	padded := common.LeftPadBytes(value, size)
	return padded[len(padded)-size:]
}
