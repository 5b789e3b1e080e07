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

import "github.com/CodeSandwich/ethers-go/common"

// TxDataExtension gives access to the transaction fields that only exist on
// the extended transaction types.
type TxDataExtension interface {
	feeCurrency() *common.Address
}

// FeeCurrency returns the token address in which the transaction pays its gas
// fees. It returns nil for transactions paying in the native currency.
func (tx *Transaction) FeeCurrency() *common.Address {
	if ext, ok := tx.inner.(TxDataExtension); ok {
		return ext.feeCurrency()
	}
	return nil
}

func (tx *LegacyTx) feeCurrency() *common.Address     { return nil }
func (tx *AccessListTx) feeCurrency() *common.Address { return nil }
func (tx *DynamicFeeTx) feeCurrency() *common.Address { return nil }
func (tx *BlobTx) feeCurrency() *common.Address       { return nil }
func (tx *SetCodeTx) feeCurrency() *common.Address    { return nil }
