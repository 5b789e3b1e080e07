// Copyright 2023 The go-ethereum Authors
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
	"fmt"
	"strconv"
	"strings"
)

// ParseHumanReadableABI parses a single human-readable ABI signature, e.g.
//
//	function transfer(address to, uint256 amount) returns (bool)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//
// into the normalized entry map matching the JSON ABI schema. Unnamed
// parameters get positional paramN names. Struct definitions and comments
// are not signatures; callers are expected to filter such lines out.
func ParseHumanReadableABI(sig string) (map[string]interface{}, error) {
	sig = strings.TrimSpace(sig)
	switch {
	case strings.HasPrefix(sig, "function "):
		return parseFunctionEntry(strings.TrimPrefix(sig, "function "))
	case strings.HasPrefix(sig, "event "):
		return parseEventEntry(strings.TrimPrefix(sig, "event "))
	case strings.HasPrefix(sig, "error "):
		return parseErrorEntry(strings.TrimPrefix(sig, "error "))
	case strings.HasPrefix(sig, "constructor"):
		return parseConstructorEntry(strings.TrimPrefix(sig, "constructor"))
	case strings.HasPrefix(sig, "fallback"):
		return parseUnnamedEntry("fallback", strings.TrimPrefix(sig, "fallback"))
	case strings.HasPrefix(sig, "receive"):
		return parseUnnamedEntry("receive", strings.TrimPrefix(sig, "receive"))
	default:
		return nil, fmt.Errorf("abi: unrecognized signature %q", sig)
	}
}

func parseFunctionEntry(s string) (map[string]interface{}, error) {
	name, params, tail, err := splitSignature(s)
	if err != nil {
		return nil, err
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("abi: invalid function name %q", name)
	}
	inputs, err := parseParamList(params, false)
	if err != nil {
		return nil, err
	}
	outputs := []ArgumentMarshaling{}
	if idx := strings.Index(tail, "returns"); idx != -1 {
		rest := strings.TrimSpace(tail[idx+len("returns"):])
		tail = strings.TrimSpace(tail[:idx])
		if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
			return nil, fmt.Errorf("abi: malformed returns clause %q", rest)
		}
		if outputs, err = parseParamList(rest[1:len(rest)-1], false); err != nil {
			return nil, err
		}
	}
	mutability := "nonpayable"
	for _, token := range strings.Fields(tail) {
		switch token {
		case "view", "pure", "payable", "nonpayable":
			mutability = token
		case "external", "public", "virtual", "override":
			// visibility carries no ABI meaning
		default:
			return nil, fmt.Errorf("abi: unexpected token %q in function %q", token, name)
		}
	}
	return map[string]interface{}{
		"type":            "function",
		"name":            name,
		"inputs":          inputs,
		"outputs":         outputs,
		"stateMutability": mutability,
	}, nil
}

func parseEventEntry(s string) (map[string]interface{}, error) {
	name, params, tail, err := splitSignature(s)
	if err != nil {
		return nil, err
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("abi: invalid event name %q", name)
	}
	inputs, err := parseParamList(params, true)
	if err != nil {
		return nil, err
	}
	anonymous := false
	for _, token := range strings.Fields(tail) {
		if token != "anonymous" {
			return nil, fmt.Errorf("abi: unexpected token %q in event %q", token, name)
		}
		anonymous = true
	}
	return map[string]interface{}{
		"type":      "event",
		"name":      name,
		"inputs":    inputs,
		"anonymous": anonymous,
	}, nil
}

func parseErrorEntry(s string) (map[string]interface{}, error) {
	name, params, tail, err := splitSignature(s)
	if err != nil {
		return nil, err
	}
	if !isIdentifier(name) {
		return nil, fmt.Errorf("abi: invalid error name %q", name)
	}
	if tail != "" {
		return nil, fmt.Errorf("abi: unexpected token %q in error %q", tail, name)
	}
	inputs, err := parseParamList(params, false)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"type":   "error",
		"name":   name,
		"inputs": inputs,
	}, nil
}

func parseConstructorEntry(s string) (map[string]interface{}, error) {
	name, params, tail, err := splitSignature(s)
	if err != nil {
		return nil, err
	}
	if name != "" {
		return nil, fmt.Errorf("abi: unexpected constructor name %q", name)
	}
	inputs, err := parseParamList(params, false)
	if err != nil {
		return nil, err
	}
	mutability := "nonpayable"
	for _, token := range strings.Fields(tail) {
		switch token {
		case "payable", "nonpayable":
			mutability = token
		case "public", "internal":
			// pre solidity v0.7.0 visibility
		default:
			return nil, fmt.Errorf("abi: unexpected token %q in constructor", token)
		}
	}
	return map[string]interface{}{
		"type":            "constructor",
		"inputs":          inputs,
		"stateMutability": mutability,
	}, nil
}

func parseUnnamedEntry(kind, s string) (map[string]interface{}, error) {
	name, params, tail, err := splitSignature(s)
	if err != nil {
		return nil, err
	}
	if name != "" || strings.TrimSpace(params) != "" {
		return nil, fmt.Errorf("abi: %s takes no parameters", kind)
	}
	mutability := "nonpayable"
	if kind == "receive" {
		mutability = "payable"
	}
	for _, token := range strings.Fields(tail) {
		switch token {
		case "payable", "nonpayable":
			mutability = token
		case "external":
		default:
			return nil, fmt.Errorf("abi: unexpected token %q in %s", token, kind)
		}
	}
	return map[string]interface{}{
		"type":            kind,
		"stateMutability": mutability,
	}, nil
}

// splitSignature cuts "name(param, param) tail" into its three parts, with
// the closing parenthesis found by bracket matching so a returns clause in
// the tail keeps its own group.
func splitSignature(s string) (name, params, tail string, err error) {
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return "", "", "", fmt.Errorf("abi: missing parameter list in %q", s)
	}
	depth, closing := 0, -1
	for i := open; i < len(s) && closing == -1; i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closing = i
			}
		}
	}
	if closing == -1 {
		return "", "", "", fmt.Errorf("abi: mismatched parentheses in %q", s)
	}
	return strings.TrimSpace(s[:open]), s[open+1 : closing], strings.TrimSpace(s[closing+1:]), nil
}

// parseParamList parses a comma separated parameter list. The indexed
// modifier is only legal on event parameters.
func parseParamList(list string, allowIndexed bool) ([]ArgumentMarshaling, error) {
	args := []ArgumentMarshaling{}
	if strings.TrimSpace(list) == "" {
		return args, nil
	}
	for i, raw := range strings.Split(list, ",") {
		tokens := strings.Fields(raw)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("abi: empty parameter in %q", list)
		}
		typ, err := normalizeTypeToken(tokens[0])
		if err != nil {
			return nil, err
		}
		arg := ArgumentMarshaling{Type: typ}
		rest := tokens[1:]
		if allowIndexed && len(rest) > 0 && rest[0] == "indexed" {
			arg.Indexed = true
			rest = rest[1:]
		}
		// data location keywords carry no ABI meaning
		for len(rest) > 0 && (rest[0] == "memory" || rest[0] == "calldata" || rest[0] == "storage") {
			rest = rest[1:]
		}
		switch {
		case len(rest) == 0:
			arg.Name = fmt.Sprintf("param%d", i)
		case len(rest) == 1 && isIdentifier(rest[0]):
			arg.Name = rest[0]
		default:
			return nil, fmt.Errorf("abi: malformed parameter %q", strings.TrimSpace(raw))
		}
		args = append(args, arg)
	}
	return args, nil
}

// normalizeTypeToken validates a solidity type token and expands the uint/int
// aliases to their canonical 256 bit form. Array sizes are validated here
// since the JSON type parser treats any non-numeric bracket content as a
// plain slice.
func normalizeTypeToken(token string) (string, error) {
	base, suffix := token, ""
	if i := strings.IndexByte(token, '['); i != -1 {
		base, suffix = token[:i], token[i:]
		rest := suffix
		for rest != "" {
			if rest[0] != '[' {
				return "", fmt.Errorf("abi: malformed array type %q", token)
			}
			j := strings.IndexByte(rest, ']')
			if j == -1 {
				return "", fmt.Errorf("abi: malformed array type %q", token)
			}
			if size := rest[1:j]; size != "" {
				if _, err := strconv.Atoi(size); err != nil {
					return "", fmt.Errorf("abi: invalid array size %q in type %q", size, token)
				}
			}
			rest = rest[j+1:]
		}
	}
	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	}
	if !isElementaryType(base) {
		return "", fmt.Errorf("abi: unknown type %q", base)
	}
	return base + suffix, nil
}

func isElementaryType(base string) bool {
	switch base {
	case "address", "bool", "string", "bytes", "function":
		return true
	}
	if n, ok := strings.CutPrefix(base, "bytes"); ok {
		size, err := strconv.Atoi(n)
		return err == nil && size >= 1 && size <= 32
	}
	// solidity only emits multiples of 8 but vyper allows any width
	if n, ok := strings.CutPrefix(base, "uint"); ok {
		size, err := strconv.Atoi(n)
		return err == nil && size >= 1 && size <= 256
	}
	if n, ok := strings.CutPrefix(base, "int"); ok {
		size, err := strconv.Atoi(n)
		return err == nil && size >= 1 && size <= 256
	}
	return false
}

func isIdentifier(s string) bool {
	for i, c := range s {
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}

// skipWhitespace returns s without leading whitespace characters.
func skipWhitespace(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t' || s[0] == '\r' || s[0] == '\n') {
		s = s[1:]
	}
	return s
}
