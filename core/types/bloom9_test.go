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

package types

import (
	"testing"

	"github.com/CodeSandwich/ethers-go/common"
)

func TestBloom(t *testing.T) {
	positive := []string{
		"testtest",
		"test",
		"hallo",
		"other",
	}
	negative := []string{
		"tes",
		"lo",
	}

	var bloom Bloom
	for _, data := range positive {
		bloom.Add([]byte(data))
	}

	for _, data := range positive {
		if !bloom.Test([]byte(data)) {
			t.Error("expected", data, "to test true")
		}
	}
	for _, data := range negative {
		if bloom.Test([]byte(data)) {
			t.Error("did not expect", data, "to test true")
		}
	}

	// A bloom reconstructed from the bytes must match the original.
	if b2 := BytesToBloom(bloom.Bytes()); b2 != bloom {
		t.Errorf("bloom mismatch after BytesToBloom: have %x, want %x", b2, bloom)
	}
	text, err := bloom.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var b3 Bloom
	if err := b3.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if b3 != bloom {
		t.Errorf("bloom mismatch after text round trip: have %x, want %x", b3, bloom)
	}
}

func TestLogsBloom(t *testing.T) {
	var (
		addr   = common.HexToAddress("0x15d4c048f83bd7e37d49ea4c83a07267ec4203da")
		topic1 = common.HexToHash("0x4dbfb68b43dddfa12b51ebe99ab8fded620f9a0ac23142879a4f192a1b7952d2")
		topic2 = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	)
	logs := []*Log{{Address: addr, Topics: []common.Hash{topic1, topic2}}}
	bloom := BytesToBloom(LogsBloom(logs))

	if !BloomLookup(bloom, addr) {
		t.Error("expected address to be present in the bloom")
	}
	for _, topic := range []common.Hash{topic1, topic2} {
		if !BloomLookup(bloom, topic) {
			t.Errorf("expected topic %x to be present in the bloom", topic)
		}
	}

	// CreateBloom over a receipt carrying the same logs sets the same bits.
	receipts := Receipts{{Logs: logs}}
	if created := CreateBloom(receipts); created != bloom {
		t.Errorf("bloom mismatch: CreateBloom %x, LogsBloom %x", created, bloom)
	}

	// An empty receipt list produces an empty bloom.
	if created := (CreateBloom(Receipts{})); created != (Bloom{}) {
		t.Errorf("expected empty bloom, got %x", created)
	}
}

func BenchmarkCreateBloom(b *testing.B) {
	var (
		addr  = common.HexToAddress("0x15d4c048f83bd7e37d49ea4c83a07267ec4203da")
		topic = common.HexToHash("0x4dbfb68b43dddfa12b51ebe99ab8fded620f9a0ac23142879a4f192a1b7952d2")
	)
	receipts := Receipts{
		{Logs: []*Log{
			{Address: addr, Topics: []common.Hash{topic}},
			{Address: addr, Topics: []common.Hash{topic, topic}},
		}},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CreateBloom(receipts)
	}
}
