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

package v2

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sync"

	ethers "github.com/CodeSandwich/ethers-go"
	"github.com/CodeSandwich/ethers-go/accounts/abi/bind"
	"github.com/CodeSandwich/ethers-go/common"
	"github.com/CodeSandwich/ethers-go/core/types"
	"github.com/CodeSandwich/ethers-go/crypto"
	"github.com/CodeSandwich/ethers-go/event"
	"github.com/CodeSandwich/ethers-go/params"
)

var (
	_ bind.ContractBackend = (*testBackend)(nil)
	_ bind.DeployBackend   = (*testBackend)(nil)
)

// testBackend is a minimal in-memory backend. It accepts signed transactions
// into a pending pool and mines them when Commit is called, deriving contract
// addresses and receipts the same way a real node would. Call results and
// event logs are canned by the test via returnOnCall and logsOnCommit.
type testBackend struct {
	mu       sync.Mutex
	signer   types.Signer
	blockNum uint64
	nonces   map[common.Address]uint64
	code     map[common.Address][]byte
	callRet  map[common.Address][]byte
	receipts map[common.Hash]*types.Receipt
	pending  []*types.Transaction
	queued   map[common.Hash][]types.Log
	history  []types.Log
	feed     event.Feed
}

func newTestBackend() *testBackend {
	return &testBackend{
		signer:   types.LatestSigner(params.AllDevChainProtocolChanges),
		nonces:   make(map[common.Address]uint64),
		code:     make(map[common.Address][]byte),
		callRet:  make(map[common.Address][]byte),
		receipts: make(map[common.Hash]*types.Receipt),
		queued:   make(map[common.Hash][]types.Log),
	}
}

// returnOnCall sets the canned result for eth_call against the given contract.
func (b *testBackend) returnOnCall(contract common.Address, ret []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callRet[contract] = ret
}

// logsOnCommit queues logs to be emitted when the given transaction is mined.
func (b *testBackend) logsOnCommit(tx *types.Transaction, logs []types.Log) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queued[tx.Hash()] = logs
}

// Commit mines all pending transactions into a new block.
func (b *testBackend) Commit() {
	b.mu.Lock()
	b.blockNum++
	var mined []types.Log
	for _, tx := range b.pending {
		from, err := types.Sender(b.signer, tx)
		if err != nil {
			panic(fmt.Sprintf("pending transaction with bad signature: %v", err))
		}
		receipt := &types.Receipt{
			Type:        tx.Type(),
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      tx.Hash(),
			GasUsed:     21000,
			BlockNumber: new(big.Int).SetUint64(b.blockNum),
		}
		if tx.To() == nil {
			addr := crypto.CreateAddress(from, tx.Nonce())
			b.code[addr] = tx.Data()
			receipt.ContractAddress = addr
		}
		for _, log := range b.queued[tx.Hash()] {
			log.BlockNumber = b.blockNum
			log.TxHash = tx.Hash()
			log.Index = uint(len(b.history))
			b.history = append(b.history, log)
			mined = append(mined, log)
		}
		delete(b.queued, tx.Hash())
		b.receipts[tx.Hash()] = receipt
	}
	b.pending = nil
	b.mu.Unlock()

	for _, log := range mined {
		b.feed.Send(log)
	}
}

func (b *testBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.code[contract], nil
}

func (b *testBackend) PendingCodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.code[contract], nil
}

func (b *testBackend) CallContract(ctx context.Context, call ethers.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if call.To == nil {
		return nil, nil
	}
	return b.callRet[*call.To], nil
}

func (b *testBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonces[account], nil
}

func (b *testBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei), nil
}

func (b *testBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei), nil
}

func (b *testBackend) EstimateGas(ctx context.Context, call ethers.CallMsg) (uint64, error) {
	return 3000000, nil
}

func (b *testBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &types.Header{
		Number:  new(big.Int).SetUint64(b.blockNum),
		BaseFee: big.NewInt(params.GWei),
	}, nil
}

func (b *testBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	from, err := types.Sender(b.signer, tx)
	if err != nil {
		return err
	}
	if tx.Nonce() != b.nonces[from] {
		return fmt.Errorf("invalid nonce: got %d, want %d", tx.Nonce(), b.nonces[from])
	}
	b.nonces[from]++
	b.pending = append(b.pending, tx)
	return nil
}

func (b *testBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethers.NotFound
	}
	return receipt, nil
}

func (b *testBackend) FilterLogs(ctx context.Context, query ethers.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var logs []types.Log
	for _, log := range b.history {
		if matchFilter(query, log) {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

func (b *testBackend) SubscribeFilterLogs(ctx context.Context, query ethers.FilterQuery, ch chan<- types.Log) (ethers.Subscription, error) {
	sink := make(chan types.Log, 16)
	sub := b.feed.Subscribe(sink)
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-sink:
				if !matchFilter(query, log) {
					continue
				}
				select {
				case ch <- log:
				case <-quit:
					return nil
				}
			case <-quit:
				return nil
			case err := <-sub.Err():
				return err
			}
		}
	}), nil
}

func matchFilter(query ethers.FilterQuery, log types.Log) bool {
	if query.FromBlock != nil && query.FromBlock.Uint64() > log.BlockNumber {
		return false
	}
	if query.ToBlock != nil && query.ToBlock.Uint64() < log.BlockNumber {
		return false
	}
	if len(query.Addresses) > 0 && !slices.Contains(query.Addresses, log.Address) {
		return false
	}
	for i, sub := range query.Topics {
		if len(sub) == 0 {
			continue
		}
		if i >= len(log.Topics) || !slices.Contains(sub, log.Topics[i]) {
			return false
		}
	}
	return true
}
