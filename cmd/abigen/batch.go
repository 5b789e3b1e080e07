// Copyright 2016 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/CodeSandwich/ethers-go/accounts/abi/bind"
	"golang.org/x/sync/errgroup"
)

// batchConfig describes a set of bindings to generate in one run. It is the
// TOML counterpart of the command line flags, one [[contract]] table per
// binding.
type batchConfig struct {
	Contracts []batchContract `toml:"contract"`
}

// batchContract is a single binding job within a batch config.
type batchContract struct {
	ABI   string `toml:"abi"`   // Path to the contract ABI, relative to the config file
	Bin   string `toml:"bin"`   // Optional path to the contract bytecode
	Type  string `toml:"type"`  // Optional struct name for the binding, defaults to pkg
	Pkg   string `toml:"pkg"`   // Package name to generate the binding into
	Out   string `toml:"out"`   // Output file, relative to the config file
	Alias string `toml:"alias"` // Optional renaming rules, same syntax as --alias
	V2    bool   `toml:"v2"`    // Generate v2 bindings
}

// loadBatchConfig reads and validates a batch config file. Relative paths
// within the config are resolved against the config file's directory.
func loadBatchConfig(path string) (*batchConfig, error) {
	var config batchConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	if len(config.Contracts) == 0 {
		return nil, fmt.Errorf("no contracts defined in %v", path)
	}
	dir := filepath.Dir(path)
	for i := range config.Contracts {
		contract := &config.Contracts[i]
		if contract.ABI == "" {
			return nil, fmt.Errorf("contract #%d: missing abi path", i)
		}
		if contract.Pkg == "" {
			return nil, fmt.Errorf("contract #%d: missing package name", i)
		}
		if contract.Out == "" {
			return nil, fmt.Errorf("contract #%d: missing output file", i)
		}
		if contract.Type == "" {
			contract.Type = contract.Pkg
		}
		contract.ABI = resolvePath(dir, contract.ABI)
		if contract.Bin != "" {
			contract.Bin = resolvePath(dir, contract.Bin)
		}
		contract.Out = resolvePath(dir, contract.Out)
	}
	return &config, nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// parseAliases expands the foo=bar,foo2=bar2 renaming syntax shared by the
// --alias flag and the batch config.
func parseAliases(spec string) map[string]string {
	aliases := make(map[string]string)
	re := regexp.MustCompile(`(?:(\w+)[:=](\w+))`)
	for _, match := range re.FindAllStringSubmatch(spec, -1) {
		aliases[match[1]] = match[2]
	}
	return aliases
}

// generateBatch runs all binding jobs from the config concurrently and writes
// each result to its configured output file.
func generateBatch(config *batchConfig) error {
	var group errgroup.Group
	for _, contract := range config.Contracts {
		group.Go(func() error {
			code, err := generateContract(contract)
			if err != nil {
				return fmt.Errorf("%v: %v", contract.Type, err)
			}
			return os.WriteFile(contract.Out, []byte(code), 0600)
		})
	}
	return group.Wait()
}

// generateContract generates the binding for a single batch job.
func generateContract(contract batchContract) (string, error) {
	abi, err := os.ReadFile(contract.ABI)
	if err != nil {
		return "", fmt.Errorf("failed to read input ABI: %v", err)
	}
	var bin []byte
	if contract.Bin != "" {
		if bin, err = os.ReadFile(contract.Bin); err != nil {
			return "", fmt.Errorf("failed to read input bytecode: %v", err)
		}
		if strings.Contains(string(bin), "//") {
			return "", fmt.Errorf("contract has additional library references")
		}
	}
	aliases := parseAliases(contract.Alias)
	if contract.V2 {
		return bind.BindV2([]string{contract.Type}, []string{string(abi)}, []string{string(bin)}, contract.Pkg, nil, aliases)
	}
	return bind.Bind([]string{contract.Type}, []string{string(abi)}, []string{string(bin)}, nil, contract.Pkg, nil, aliases)
}
