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
	"bytes"
	"math/big"
	"reflect"
	"testing"

	"github.com/CodeSandwich/ethers-go/common"
	"github.com/CodeSandwich/ethers-go/common/math"
	"github.com/CodeSandwich/ethers-go/crypto"
	"github.com/CodeSandwich/ethers-go/internal/blocktest"
	"github.com/CodeSandwich/ethers-go/params"
	"github.com/CodeSandwich/ethers-go/rlp"
)

func TestUncleHash(t *testing.T) {
	uncles := make([]*Header, 0)
	h := CalcUncleHash(uncles)
	exp := common.HexToHash("1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347")
	if h != exp {
		t.Fatalf("empty uncle hash is wrong, got %x != %x", h, exp)
	}
}

func makeBenchBlock() *Block {
	var (
		key, _   = crypto.GenerateKey()
		txs      = make([]*Transaction, 70)
		receipts = make([]*Receipt, len(txs))
		signer   = LatestSignerForChainID(params.TestChainConfig.ChainID)
		uncles   = make([]*Header, 3)
	)
	header := &Header{
		Difficulty: math.BigPow(11, 11),
		Number:     math.BigPow(2, 9),
		GasLimit:   12345678,
		GasUsed:    1476322,
		Time:       9876543,
		Extra:      []byte("coolest block on chain"),
	}
	for i := range txs {
		amount := math.BigPow(2, int64(i))
		price := big.NewInt(300000)
		data := make([]byte, 100)
		tx := NewTransaction(uint64(i), common.Address{}, amount, 123457, price, data)
		signedTx, err := SignTx(tx, signer, key)
		if err != nil {
			panic(err)
		}
		txs[i] = signedTx
		receipts[i] = NewReceipt(make([]byte, 32), false, tx.Gas())
	}
	for i := range uncles {
		uncles[i] = &Header{
			Difficulty: math.BigPow(11, 11),
			Number:     math.BigPow(2, 9),
			GasLimit:   12345678,
			GasUsed:    1476322,
			Time:       9876543,
			Extra:      []byte("benchmark uncle"),
		}
	}
	return NewBlock(header, &Body{Transactions: txs, Uncles: uncles}, receipts, blocktest.NewHasher())
}

func BenchmarkEncodeBlock(b *testing.B) {
	block := makeBenchBlock()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var w bytes.Buffer
		rlp.Encode(&w, block)
	}
}

func TestBlockEncodingRoundTrip(t *testing.T) {
	key, err := crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	if err != nil {
		t.Fatal(err)
	}
	var (
		signer = LatestSignerForChainID(big.NewInt(1))
		addr   = crypto.PubkeyToAddress(key.PublicKey)
		to     = common.HexToAddress("0x095e7baea6a6c7c4c2dfeb977efac326af552d87")
	)
	txs := []*Transaction{
		MustSignNewTx(key, signer, &LegacyTx{
			Nonce:    0,
			GasPrice: big.NewInt(10),
			Gas:      50000,
			To:       &to,
			Value:    big.NewInt(10),
		}),
		MustSignNewTx(key, signer, &DynamicFeeTx{
			ChainID:   big.NewInt(1),
			Nonce:     1,
			GasTipCap: big.NewInt(10),
			GasFeeCap: big.NewInt(30),
			Gas:       50000,
			To:        &to,
			Value:     big.NewInt(10),
		}),
	}
	receipts := []*Receipt{
		{Status: ReceiptStatusSuccessful, CumulativeGasUsed: 21000},
		{Status: ReceiptStatusSuccessful, CumulativeGasUsed: 42000},
	}
	uncle := &Header{
		ParentHash: common.HexToHash("0x83cafc574e1f51ba9dc0568fc617a08ea2429fb384059c972f13b19fa1c8dd55"),
		Coinbase:   common.HexToAddress("0x8888f1f195afa192cfee860698584c030f4c9db1"),
		Difficulty: big.NewInt(131072),
		Number:     big.NewInt(313),
		GasLimit:   3141592,
		Time:       1426516743,
	}
	header := &Header{
		ParentHash: common.HexToHash("0x83cafc574e1f51ba9dc0568fc617a08ea2429fb384059c972f13b19fa1c8dd55"),
		Coinbase:   common.HexToAddress("0x8888f1f195afa192cfee860698584c030f4c9db1"),
		Root:       common.HexToHash("0xef1552a40b7165c3cd773806b9e0c165b75356e0314bf0706f279c729f51e017"),
		Difficulty: big.NewInt(131072),
		Number:     big.NewInt(314),
		GasLimit:   3141592,
		GasUsed:    63000,
		Time:       1426516743,
		Extra:      []byte("test block"),
		Nonce:      EncodeNonce(0xa13a5a8c8f2bb1c4),
		BaseFee:    big.NewInt(1000000000),
	}
	block := NewBlock(header, &Body{Transactions: txs, Uncles: []*Header{uncle}}, receipts, blocktest.NewHasher())

	enc, err := rlp.EncodeToBytes(block)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	var dec Block
	if err := rlp.DecodeBytes(enc, &dec); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if dec.Hash() != block.Hash() {
		t.Errorf("block hash mismatch: got %x, want %x", dec.Hash(), block.Hash())
	}
	if dec.Size() != uint64(len(enc)) {
		t.Errorf("size mismatch: got %d, want %d", dec.Size(), len(enc))
	}
	if len(dec.Transactions()) != len(txs) {
		t.Fatalf("transaction count mismatch: got %d, want %d", len(dec.Transactions()), len(txs))
	}
	for i, tx := range dec.Transactions() {
		if tx.Hash() != txs[i].Hash() {
			t.Errorf("tx %d hash mismatch: got %x, want %x", i, tx.Hash(), txs[i].Hash())
		}
		from, err := Sender(signer, tx)
		if err != nil {
			t.Fatalf("tx %d sender error: %v", i, err)
		}
		if from != addr {
			t.Errorf("tx %d sender mismatch: got %x, want %x", i, from, addr)
		}
	}
	if len(dec.Uncles()) != 1 || dec.Uncles()[0].Hash() != uncle.Hash() {
		t.Errorf("uncles mismatch")
	}
	if dec.BaseFee().Cmp(header.BaseFee) != 0 {
		t.Errorf("base fee mismatch: got %v, want %v", dec.BaseFee(), header.BaseFee)
	}
	if dec.Withdrawals() != nil {
		t.Errorf("unexpected withdrawals in block without withdrawals")
	}
}

func TestWithdrawalsBlockEncoding(t *testing.T) {
	withdrawals := []*Withdrawal{
		{Index: 0, Validator: 1, Address: common.HexToAddress("0x6295ee1b4f6dd65047762f924ecd367c17eabf8f"), Amount: 10},
		{Index: 1, Validator: 2, Address: common.HexToAddress("0x095e7baea6a6c7c4c2dfeb977efac326af552d87"), Amount: 3000},
	}
	header := &Header{
		Difficulty: common.Big0,
		Number:     big.NewInt(1),
		GasLimit:   30000000,
		Time:       1678000000,
		BaseFee:    big.NewInt(7),
	}
	block := NewBlock(header, &Body{Withdrawals: withdrawals}, nil, blocktest.NewHasher())
	if block.Header().WithdrawalsHash == nil {
		t.Fatal("withdrawals hash not set")
	}

	enc, err := rlp.EncodeToBytes(block)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	var dec Block
	if err := rlp.DecodeBytes(enc, &dec); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if dec.Hash() != block.Hash() {
		t.Errorf("block hash mismatch: got %x, want %x", dec.Hash(), block.Hash())
	}
	if !reflect.DeepEqual(dec.Withdrawals(), block.Withdrawals()) {
		t.Errorf("withdrawals mismatch: got %+v, want %+v", dec.Withdrawals(), block.Withdrawals())
	}

	// A block with an empty withdrawals list is still a block with withdrawals.
	empty := NewBlock(header, &Body{Withdrawals: []*Withdrawal{}}, nil, blocktest.NewHasher())
	if h := empty.Header().WithdrawalsHash; h == nil || *h != EmptyWithdrawalsHash {
		t.Errorf("empty withdrawals hash mismatch: got %v, want %v", h, EmptyWithdrawalsHash)
	}
	if !empty.Header().EmptyBody() {
		t.Errorf("block with empty withdrawals should have an empty body")
	}
}

func TestBodyEncodingRoundTrip(t *testing.T) {
	tx := NewTx(&LegacyTx{
		Nonce:    3,
		GasPrice: big.NewInt(1),
		Gas:      25000,
		Value:    big.NewInt(99),
		V:        big.NewInt(27),
		R:        big.NewInt(10),
		S:        big.NewInt(11),
	})
	body := &Body{Transactions: []*Transaction{tx}, Uncles: []*Header{}}
	enc, err := rlp.EncodeToBytes(body)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	var dec Body
	if err := rlp.DecodeBytes(enc, &dec); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(dec.Transactions) != 1 || dec.Transactions[0].Hash() != tx.Hash() {
		t.Errorf("transactions mismatch after round trip")
	}
	if dec.Withdrawals != nil {
		t.Errorf("unexpected withdrawals: %+v", dec.Withdrawals)
	}
}

func TestCopyHeader(t *testing.T) {
	baseFee := big.NewInt(10)
	wdHash := common.HexToHash("0x61e67afc96bfcdbafcdb5e6c15bd2b3dacfb1a7b8de78b316dfa4653e7bd9b22")
	h := &Header{
		Difficulty:      big.NewInt(100),
		Number:          big.NewInt(200),
		Extra:           []byte{1, 2, 3},
		BaseFee:         baseFee,
		WithdrawalsHash: &wdHash,
	}
	cpy := CopyHeader(h)
	if cpy.Hash() != h.Hash() {
		t.Fatalf("copied header hash mismatch")
	}
	cpy.Difficulty.SetUint64(5)
	cpy.BaseFee.SetUint64(5)
	cpy.Extra[0] = 9
	*cpy.WithdrawalsHash = common.Hash{}
	if h.Difficulty.Uint64() != 100 || h.BaseFee.Uint64() != 10 {
		t.Errorf("copy shares big.Int values with the original")
	}
	if h.Extra[0] != 1 {
		t.Errorf("copy shares extra data with the original")
	}
	if *h.WithdrawalsHash != wdHash {
		t.Errorf("copy shares withdrawals hash with the original")
	}
}
