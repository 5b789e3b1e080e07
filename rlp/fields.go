// Copyright 2025 The go-ethereum Authors
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
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Fields encodes and decodes a flat list of values as if they were the fields
// of a struct. It is meant for hand-written EncodeRLP and DecodeRLP methods of
// types whose wire format cannot be expressed with struct tags alone.
type Fields struct {
	Required []any
	Optional []any // trailing values, left out of the list while nil
}

var _ interface {
	Encoder
	Decoder
} = (*Fields)(nil)

// EncodeRLP writes the required and optional values to w as a single list.
// An optional value is included only if it or any later optional value is
// non-nil. The optional values therefore behave like trailing fields tagged
// with rlp:"?".
func (f *Fields) EncodeRLP(w io.Writer) error {
	include, err := f.optionalFlags()
	if err != nil {
		return err
	}

	b := NewEncoderBuffer(w)
	err = b.InList(func() error {
		for _, v := range f.Required {
			if err := Encode(b, v); err != nil {
				return err
			}
		}
		for i, v := range f.Optional {
			if !include[i] {
				return nil
			}
			if err := Encode(b, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return b.Flush()
}

var errUnsupportedOptionalField = errors.New("rlp: unsupported optional field type")

// optionalFlags reports, for each optional value, whether it must be written.
// A value must be written if it or any later optional value is non-nil, so the
// result is monotonic non-increasing from true to false.
func (f *Fields) optionalFlags() ([]bool, error) {
	flags := make([]bool, len(f.Optional))
	include := false
	for i := len(f.Optional) - 1; i >= 0; i-- {
		switch v := reflect.ValueOf(f.Optional[i]); v.Kind() {
		case reflect.Slice, reflect.Pointer:
			include = include || !v.IsNil()
		default:
			return nil, fmt.Errorf("%w: %T", errUnsupportedOptionalField, f.Optional[i])
		}
		flags[i] = include
	}
	return flags, nil
}

// DecodeRLP implements the Decoder interface. All destination values, required
// and optional alike, must be pointers. Optional values absent from the input
// list are left untouched, so callers should pass pointers to zero values.
func (f *Fields) DecodeRLP(s *Stream) error {
	return s.FromList(func() error {
		for _, v := range f.Required {
			if err := s.Decode(v); err != nil {
				return err
			}
		}
		for _, v := range f.Optional {
			if !s.MoreDataInList() {
				return nil
			}
			if err := s.Decode(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Nillable wraps field to mirror the behaviour of an rlp:"nil" tag. If a
// zero-sized item is decoded into the returned Decoder, *field is set to nil,
// otherwise the item is decoded directly into field. The return value is
// intended for use with Fields.
func Nillable[T any](field **T) Decoder {
	return &nillable[T]{field}
}

type nillable[T any] struct{ v **T }

func (n *nillable[T]) DecodeRLP(s *Stream) error {
	_, size, err := s.Kind()
	if err != nil {
		return err
	}
	if size > 0 {
		return s.Decode(n.v)
	}
	*n.v = nil
	_, err = s.Raw() // consume the empty item
	return err
}

// InList calls fn between calls to List and ListEnd. An error from fn is
// propagated directly and leaves the list unfinished.
func (b EncoderBuffer) InList(fn func() error) error {
	l := b.List()
	if err := fn(); err != nil {
		return err
	}
	b.ListEnd(l)
	return nil
}

// EncodeListToBuffer writes the RLP encoding of each element of vals to b,
// wrapped in a list.
func EncodeListToBuffer[T any](b EncoderBuffer, vals []T) error {
	return b.InList(func() error {
		for _, v := range vals {
			if err := Encode(b, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// FromList calls fn between calls to List and ListEnd. An error from fn is
// propagated directly and leaves the list open.
func (s *Stream) FromList(fn func() error) error {
	if _, err := s.List(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.ListEnd()
}

// DecodeList assumes that the next item in s is a list and decodes every
// element of said list into a *T.
//
// The returned slice is non-nil even if the list is empty. It is the caller's
// responsibility to respect rlp:"nil" semantics where required.
func DecodeList[T any](s *Stream) ([]*T, error) {
	vals := []*T{}
	err := s.FromList(func() error {
		for s.MoreDataInList() {
			var v T
			if err := s.Decode(&v); err != nil {
				return err
			}
			vals = append(vals, &v)
		}
		return nil
	})
	return vals, err
}
