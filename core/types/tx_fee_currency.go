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

package types

import (
	"bytes"
	"math/big"

	"github.com/CodeSandwich/ethers-go/common"
	"github.com/CodeSandwich/ethers-go/rlp"
)

// FeeCurrencyTx is an EIP-1559 style transaction that pays its gas fees in a
// whitelisted ERC-20 token instead of the native currency.
type FeeCurrencyTx struct {
	ChainID     *big.Int
	Nonce       uint64
	GasTipCap   *big.Int // a.k.a. maxPriorityFeePerGas
	GasFeeCap   *big.Int // a.k.a. maxFeePerGas
	Gas         uint64
	To          *common.Address `rlp:"nil"` // nil means contract creation
	Value       *big.Int
	Data        []byte
	AccessList  AccessList
	FeeCurrency *common.Address `rlp:"nil"` // nil means the native currency

	// Signature values
	V *big.Int
	R *big.Int
	S *big.Int
}

// copy creates a deep copy of the transaction data and initializes all fields.
func (tx *FeeCurrencyTx) copy() TxData {
	cpy := &FeeCurrencyTx{
		Nonce:       tx.Nonce,
		To:          copyAddressPtr(tx.To),
		Data:        common.CopyBytes(tx.Data),
		Gas:         tx.Gas,
		FeeCurrency: copyAddressPtr(tx.FeeCurrency),
		// These are copied below.
		AccessList: make(AccessList, len(tx.AccessList)),
		Value:      new(big.Int),
		ChainID:    new(big.Int),
		GasTipCap:  new(big.Int),
		GasFeeCap:  new(big.Int),
		V:          new(big.Int),
		R:          new(big.Int),
		S:          new(big.Int),
	}
	copy(cpy.AccessList, tx.AccessList)
	if tx.Value != nil {
		cpy.Value.Set(tx.Value)
	}
	if tx.ChainID != nil {
		cpy.ChainID.Set(tx.ChainID)
	}
	if tx.GasTipCap != nil {
		cpy.GasTipCap.Set(tx.GasTipCap)
	}
	if tx.GasFeeCap != nil {
		cpy.GasFeeCap.Set(tx.GasFeeCap)
	}
	if tx.V != nil {
		cpy.V.Set(tx.V)
	}
	if tx.R != nil {
		cpy.R.Set(tx.R)
	}
	if tx.S != nil {
		cpy.S.Set(tx.S)
	}
	return cpy
}

// accessors for innerTx.
func (tx *FeeCurrencyTx) txType() byte                 { return FeeCurrencyTxType }
func (tx *FeeCurrencyTx) chainID() *big.Int            { return tx.ChainID }
func (tx *FeeCurrencyTx) accessList() AccessList       { return tx.AccessList }
func (tx *FeeCurrencyTx) data() []byte                 { return tx.Data }
func (tx *FeeCurrencyTx) gas() uint64                  { return tx.Gas }
func (tx *FeeCurrencyTx) gasFeeCap() *big.Int          { return tx.GasFeeCap }
func (tx *FeeCurrencyTx) gasTipCap() *big.Int          { return tx.GasTipCap }
func (tx *FeeCurrencyTx) gasPrice() *big.Int           { return tx.GasFeeCap }
func (tx *FeeCurrencyTx) value() *big.Int              { return tx.Value }
func (tx *FeeCurrencyTx) nonce() uint64                { return tx.Nonce }
func (tx *FeeCurrencyTx) to() *common.Address          { return tx.To }
func (tx *FeeCurrencyTx) feeCurrency() *common.Address { return tx.FeeCurrency }

func (tx *FeeCurrencyTx) effectiveGasPrice(dst *big.Int, baseFee *big.Int) *big.Int {
	if baseFee == nil {
		return dst.Set(tx.GasFeeCap)
	}
	tip := dst.Sub(tx.GasFeeCap, baseFee)
	if tip.Cmp(tx.GasTipCap) > 0 {
		tip.Set(tx.GasTipCap)
	}
	return tip.Add(tip, baseFee)
}

func (tx *FeeCurrencyTx) rawSignatureValues() (v, r, s *big.Int) {
	return tx.V, tx.R, tx.S
}

func (tx *FeeCurrencyTx) setSignatureValues(chainID, v, r, s *big.Int) {
	tx.ChainID, tx.V, tx.R, tx.S = chainID, v, r, s
}

func (tx *FeeCurrencyTx) encode(b *bytes.Buffer) error {
	return rlp.Encode(b, tx)
}

func (tx *FeeCurrencyTx) decode(input []byte) error {
	return rlp.DecodeBytes(input, tx)
}

func (tx *FeeCurrencyTx) sigHash(chainID *big.Int) common.Hash {
	return prefixedRlpHash(
		FeeCurrencyTxType,
		[]any{
			chainID,
			tx.Nonce,
			tx.GasTipCap,
			tx.GasFeeCap,
			tx.Gas,
			tx.To,
			tx.Value,
			tx.Data,
			tx.AccessList,
			tx.FeeCurrency,
		})
}
