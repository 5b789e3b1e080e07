// Copyright 2024 The go-ethereum Authors
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

package rlp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"runtime"
	"sync"
	"testing"

	"github.com/CodeSandwich/ethers-go/common/math"
	"github.com/holiman/uint256"
)

type testEncoder struct {
	err error
}

func (e *testEncoder) EncodeRLP(w io.Writer) error {
	if e == nil {
		panic("EncodeRLP called on nil value")
	}
	if e.err != nil {
		return e.err
	}
	if _, err := w.Write([]byte{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}); err != nil {
		return err
	}
	return nil
}

type testEncoderValueMethod struct{}

func (e testEncoderValueMethod) EncodeRLP(w io.Writer) error {
	_, err := w.Write([]byte{0xFA, 0xFB, 0xFC})
	return err
}

type byteEncoder byte

func (e byteEncoder) EncodeRLP(w io.Writer) error {
	_, err := w.Write(EmptyList)
	return err
}

type undecodableEncoder func()

func (f undecodableEncoder) EncodeRLP(w io.Writer) error {
	_, err := w.Write([]byte{0xF5, 0xF5, 0xF5})
	return err
}

type encodableReader struct {
	A, B uint
}

func (e *encodableReader) Read(b []byte) (int, error) {
	panic("called")
}

type namedByteType byte

var (
	_ = Encoder(&testEncoder{})
	_ = Encoder(byteEncoder(0))

	reader io.Reader = &encodableReader{1, 2}
)

type encTest struct {
	val           interface{}
	output, error string
}

var encTests = []encTest{
	// booleans
	{val: true, output: "01"},
	{val: false, output: "80"},

	// integers
	{val: uint32(0), output: "80"},
	{val: uint32(127), output: "7F"},
	{val: uint32(128), output: "8180"},
	{val: uint32(256), output: "820100"},
	{val: uint32(1024), output: "820400"},
	{val: uint32(0xFFFFFF), output: "83FFFFFF"},
	{val: uint32(0xFFFFFFFF), output: "84FFFFFFFF"},
	{val: uint64(0xFFFFFFFF), output: "84FFFFFFFF"},
	{val: uint64(0xFFFFFFFFFF), output: "85FFFFFFFFFF"},
	{val: uint64(0xFFFFFFFFFFFF), output: "86FFFFFFFFFFFF"},
	{val: uint64(0xFFFFFFFFFFFFFF), output: "87FFFFFFFFFFFFFF"},
	{val: uint64(0xFFFFFFFFFFFFFFFF), output: "88FFFFFFFFFFFFFFFF"},

	// big integers (should match uint for small values)
	{val: big.NewInt(0), output: "80"},
	{val: big.NewInt(1), output: "01"},
	{val: big.NewInt(127), output: "7F"},
	{val: big.NewInt(128), output: "8180"},
	{val: big.NewInt(256), output: "820100"},
	{val: big.NewInt(1024), output: "820400"},
	{val: big.NewInt(0xFFFFFF), output: "83FFFFFF"},
	{val: big.NewInt(0xFFFFFFFF), output: "84FFFFFFFF"},
	{val: big.NewInt(0xFFFFFFFFFF), output: "85FFFFFFFFFF"},
	{val: big.NewInt(0xFFFFFFFFFFFF), output: "86FFFFFFFFFFFF"},
	{val: big.NewInt(0xFFFFFFFFFFFFFF), output: "87FFFFFFFFFFFFFF"},
	{
		val:    new(big.Int).SetBytes(unhex("102030405060708090A0B0C0D0E0F2")),
		output: "8F102030405060708090A0B0C0D0E0F2",
	},
	{
		val:    new(big.Int).SetBytes(unhex("0100020003000400050006000700080009000A000B000C000D000E01")),
		output: "9C0100020003000400050006000700080009000A000B000C000D000E01",
	},
	{
		val:    new(big.Int).SetBytes(unhex("010000000000000000000000000000000000000000000000000000000000000000")),
		output: "A1010000000000000000000000000000000000000000000000000000000000000000",
	},
	{val: veryBigInt, output: "89FFFFFFFFFFFFFFFFFF"},
	{val: veryVeryBigInt, output: "B848FFFFFFFFFFFFFFFFF800000000000000001BFFFFFFFFFFFFFFFFC8000000000000000045FFFFFFFFFFFFFFFFC800000000000000001BFFFFFFFFFFFFFFFFF8000000000000000001"},

	// non-pointer big.Int
	{val: *big.NewInt(0), output: "80"},
	{val: *big.NewInt(0xFFFFFF), output: "83FFFFFF"},

	// negative ints are not supported
	{val: big.NewInt(-1), error: "rlp: cannot encode negative big.Int"},
	{val: *big.NewInt(-1), error: "rlp: cannot encode negative big.Int"},

	// uint256
	{val: uint256.NewInt(0), output: "80"},
	{val: uint256.NewInt(1), output: "01"},
	{val: uint256.NewInt(127), output: "7F"},
	{val: uint256.NewInt(128), output: "8180"},
	{val: uint256.NewInt(256), output: "820100"},
	{val: uint256.NewInt(1024), output: "820400"},
	{val: uint256.NewInt(0xFFFFFF), output: "83FFFFFF"},
	{val: uint256.NewInt(0xFFFFFFFF), output: "84FFFFFFFF"},
	{val: uint256.NewInt(0xFFFFFFFFFF), output: "85FFFFFFFFFF"},
	{val: uint256.NewInt(0xFFFFFFFFFFFF), output: "86FFFFFFFFFFFF"},
	{val: uint256.NewInt(0xFFFFFFFFFFFFFF), output: "87FFFFFFFFFFFFFF"},
	{
		val:    new(uint256.Int).SetBytes(unhex("102030405060708090A0B0C0D0E0F2")),
		output: "8F102030405060708090A0B0C0D0E0F2",
	},
	{
		val:    new(uint256.Int).SetBytes(unhex("100020003000400050006000700080009000A000B000C000D000E000F0001020")),
		output: "A0100020003000400050006000700080009000A000B000C000D000E000F0001020",
	},
	// non-pointer uint256.Int
	{val: *uint256.NewInt(0), output: "80"},
	{val: *uint256.NewInt(0xFFFFFF), output: "83FFFFFF"},

	// byte arrays
	{val: [0]byte{}, output: "80"},
	{val: [1]byte{0}, output: "00"},
	{val: [1]byte{1}, output: "01"},
	{val: [1]byte{0x7F}, output: "7F"},
	{val: [1]byte{0x80}, output: "8180"},
	{val: [1]byte{0xFF}, output: "81FF"},
	{val: [3]byte{1, 2, 3}, output: "83010203"},
	{val: [57]byte{1, 2, 3}, output: "B9003901020300000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"},

	// named byte type arrays
	{val: [5]namedByteType{1, 2, 3, 4, 5}, output: "850102030405"},

	// byte slices
	{val: []byte{}, output: "80"},
	{val: []byte{0}, output: "00"},
	{val: []byte{0x7E}, output: "7E"},
	{val: []byte{0x7F}, output: "7F"},
	{val: []byte{0x80}, output: "8180"},
	{val: []byte{1, 2, 3}, output: "83010203"},

	// named byte type slices
	{val: []namedByteType{1, 2, 3}, output: "83010203"},

	// strings
	{val: "", output: "80"},
	{val: "\x7E", output: "7E"},
	{val: "\x7F", output: "7F"},
	{val: "\x80", output: "8180"},
	{val: "dog", output: "83646F67"},
	{
		val:    "Lorem ipsum dolor sit amet, consectetur adipisicing eli",
		output: "B74C6F72656D20697073756D20646F6C6F722073697420616D65742C20636F6E7365637465747572206164697069736963696E6720656C69",
	},
	{
		val:    "Lorem ipsum dolor sit amet, consectetur adipisicing elit",
		output: "B8384C6F72656D20697073756D20646F6C6F722073697420616D65742C20636F6E7365637465747572206164697069736963696E6720656C6974",
	},

	// slices
	{val: []uint{}, output: "C0"},
	{val: []uint{1, 2, 3}, output: "C3010203"},
	{
		// [ [], [[]], [ [], [[]] ] ]
		val:    []interface{}{[]interface{}{}, [][]interface{}{{}}, []interface{}{[]interface{}{}, [][]interface{}{{}}}},
		output: "C7C0C1C0C3C0C1C0",
	},
	{
		val:    []interface{}{uint(1), uint(0xFFFFFF), []interface{}{[]uint{4, 5, 5}}, "abc"},
		output: "CE0183FFFFFFC4C304050583616263",
	},
	{
		val: [][]string{
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
			{"asdf", "qwer", "zxcv"},
		},
		output: "F840CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376CF84617364668471776572847A786376",
	},

	// RawValue
	{val: RawValue(unhex("01")), output: "01"},
	{val: RawValue(unhex("82FFFF")), output: "82FFFF"},
	{val: []RawValue{unhex("01"), unhex("02")}, output: "C20102"},

	// structs
	{val: simplestruct{}, output: "C28080"},
	{val: simplestruct{A: 3, B: "foo"}, output: "C50383666F6F"},
	{val: &recstruct{5, nil}, output: "C205C0"},
	{val: &recstruct{5, &recstruct{4, &recstruct{3, nil}}}, output: "C605C404C203C0"},
	{val: &intField{X: 3}, error: "rlp: type int is not RLP-serializable (struct field rlp.intField.X)"},

	// struct tag "-"
	{val: &ignoredField{A: 1, B: 2, C: 3}, output: "C20103"},

	// struct tag "tail"
	{val: &tailRaw{A: 1, Tail: []RawValue{unhex("02"), unhex("03")}}, output: "C3010203"},
	{val: &tailRaw{A: 1, Tail: []RawValue{unhex("02")}}, output: "C20102"},
	{val: &tailRaw{A: 1, Tail: []RawValue{}}, output: "C101"},
	{val: &tailRaw{A: 1, Tail: nil}, output: "C101"},

	// struct tag "?"
	{val: &optionalPtrField{A: 1}, output: "C101"},
	{val: &optionalPtrField{A: 1, B: &[3]byte{1, 2, 3}}, output: "C50183010203"},

	// nil
	{val: (*uint)(nil), output: "80"},
	{val: (*string)(nil), output: "80"},
	{val: (*[]byte)(nil), output: "80"},
	{val: (*[10]byte)(nil), output: "80"},
	{val: (*big.Int)(nil), output: "80"},
	{val: (*uint256.Int)(nil), output: "80"},
	{val: (*[]string)(nil), output: "C0"},
	{val: (*[10]uint)(nil), output: "C0"},
	{val: (*[]interface{})(nil), output: "C0"},
	{val: (*[]struct{ uint })(nil), output: "C0"},
	{val: (*interface{})(nil), output: "C0"},

	// nil struct fields
	{
		val: struct {
			X *[]byte
		}{},
		output: "C180",
	},
	{
		val: struct {
			X *[2]byte
		}{},
		output: "C180",
	},
	{
		val: struct {
			X *uint64
		}{},
		output: "C180",
	},
	{
		val: struct {
			X *uint64 `rlp:"nilList"`
		}{},
		output: "C1C0",
	},
	{
		val: struct {
			X *[]uint64
		}{},
		output: "C1C0",
	},
	{
		val: struct {
			X *[]uint64 `rlp:"nilString"`
		}{},
		output: "C180",
	},

	// interfaces
	{val: []io.Reader{reader}, output: "C3C20102"}, // the contained value is a struct

	// Encoder
	{val: (*testEncoder)(nil), output: "C0"},
	{val: &testEncoder{}, output: "00010001000100010001"},
	{val: &testEncoder{errors.New("test error")}, error: "test error"},
	{val: &testEncoderValueMethod{}, output: "FAFBFC"},
	{val: testEncoderValueMethod{}, output: "FAFBFC"},

	// Verify that the Encoder interface works for unsupported types like func().
	{val: undecodableEncoder(func() {}), output: "F5F5F5"},

	// Verify that pointer method testEncoder.EncodeRLP is called for
	// addressable non-pointer values.
	{val: &struct{ TE testEncoder }{testEncoder{}}, output: "CA00010001000100010001"},
	{val: &struct{ TE testEncoder }{testEncoder{errors.New("test error")}}, error: "test error"},

	// Verify the error for non-addressable non-pointer Encoder.
	{val: testEncoder{}, error: "rlp: unaddressable value of type rlp.testEncoder, EncodeRLP is pointer method"},

	// Verify Encoder takes precedence over []byte.
	{val: []byteEncoder{0, 1, 2, 3, 4}, output: "C5C0C0C0C0C0"},

	// other cases
	{val: nil, error: "rlp: cannot encode nil value"},
	{val: func() {}, error: "rlp: type func() is not RLP-serializable"},
	{val: make(chan bool), error: "rlp: type chan bool is not RLP-serializable"},
	{val: map[string]bool{}, error: "rlp: type map[string]bool is not RLP-serializable"},
}

func runEncTests(t *testing.T, f func(val interface{}) ([]byte, error)) {
	for i, test := range encTests {
		output, err := f(test.val)
		if err != nil && test.error == "" {
			t.Errorf("test %d: unexpected error: %v\nvalue %#v\ntype %T",
				i, err, test.val, test.val)
			continue
		}
		if test.error != "" && fmt.Sprint(err) != test.error {
			t.Errorf("test %d: error mismatch\ngot   %v\nwant  %v\nvalue %#v\ntype  %T",
				i, err, test.error, test.val, test.val)
			continue
		}
		if err == nil && !bytes.Equal(output, unhex(test.output)) {
			t.Errorf("test %d: output mismatch:\ngot   %X\nwant  %s\nvalue %#v\ntype  %T",
				i, output, test.output, test.val, test.val)
		}
	}
}

func TestEncode(t *testing.T) {
	runEncTests(t, func(val interface{}) ([]byte, error) {
		b := new(bytes.Buffer)
		err := Encode(b, val)
		return b.Bytes(), err
	})
}

func TestEncodeToBytes(t *testing.T) {
	runEncTests(t, EncodeToBytes)
}

func TestEncodeAppendToBytes(t *testing.T) {
	buffer := make([]byte, 20)
	runEncTests(t, func(val interface{}) ([]byte, error) {
		w := NewEncoderBuffer(nil)
		defer w.Flush()

		err := Encode(w, val)
		if err != nil {
			return nil, err
		}
		output := w.AppendToBytes(buffer[:0])
		return output, nil
	})
}

func TestEncodeToReader(t *testing.T) {
	runEncTests(t, func(val interface{}) ([]byte, error) {
		_, r, err := EncodeToReader(val)
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	})
}

func TestEncodeToReaderPiecewise(t *testing.T) {
	runEncTests(t, func(val interface{}) ([]byte, error) {
		size, r, err := EncodeToReader(val)
		if err != nil {
			return nil, err
		}

		// read output piecewise
		output := make([]byte, size)
		for start, end := 0, 0; start < size; start = end {
			if remaining := size - start; remaining < 3 {
				end += remaining
			} else {
				end = start + 3
			}
			n, err := r.Read(output[start:end])
			end = start + n
			if err == io.EOF {
				break
			} else if err != nil {
				return nil, err
			}
		}
		return output, nil
	})
}

// This is a regression test verifying that encReader
// returns its encbuf to the pool only once.
func TestEncodeToReaderReturnToPool(t *testing.T) {
	buf := make([]byte, 50)
	for i := 0; i < 5; i++ {
		_, r, _ := EncodeToReader("foo")
		io.ReadAll(r)
		r.Read(buf)
		r.Read(buf)
		r.Read(buf)
		r.Read(buf)
	}
}

var sink interface{}

func BenchmarkIntsize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = intsize(0x12345678)
	}
}

func BenchmarkPutint(b *testing.B) {
	buf := make([]byte, 8)
	for i := 0; i < b.N; i++ {
		putint(buf, 0x12345678)
		sink = buf
	}
}

func BenchmarkEncodeBigInt(b *testing.B) {
	for _, bits := range []int{64, 128, 200, 256, 2048} {
		b.Run(fmt.Sprintf("%d-bits", bits), func(b *testing.B) {
			i := math.BigPow(2, int64(bits))
			i.Sub(i, big.NewInt(1))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				if _, err := EncodeToBytes(i); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncodeConcurrentInterface(b *testing.B) {
	type struct1 struct {
		A string
		B *big.Int
		C [20]byte
	}
	value := []interface{}{
		uint(999),
		&struct1{A: "hello", B: big.NewInt(0xFFFFFFFF)},
		[10]byte{1, 2, 3, 4, 5, 6},
		[]string{"yeah", "yeah", "yeah"},
	}

	var wg sync.WaitGroup
	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var buffer bytes.Buffer
			for i := 0; i < b.N; i++ {
				buffer.Reset()
				err := Encode(&buffer, value)
				if err != nil {
					panic(err)
				}
			}
		}()
	}
	wg.Wait()
}
