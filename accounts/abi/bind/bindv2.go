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

package bind

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"regexp"
	"slices"
	"strings"
	"text/template"
	"unicode"

	"github.com/CodeSandwich/ethers-go/accounts/abi"
)

// binder is the state of the binding of a set of contracts.
type binder struct {
	// contracts is the map of each individual contract requested binding.
	contracts map[string]*tmplContractV2

	// structs is the map of all redeclared structs shared by passed contracts.
	structs map[string]*tmplStruct

	// aliases is a map for renaming instances of named events/functions/errors to specified values.
	aliases map[string]string
}

// contractBinder holds state for binding of a single contract.
type contractBinder struct {
	binder *binder
	calls  map[string]*tmplMethod
	events map[string]*tmplEvent
	errors map[string]*tmplError

	callIdentifiers  map[string]bool
	eventIdentifiers map[string]bool
	errorIdentifiers map[string]bool
}

// normalizeArgs renames anonymous or reserved argument names to valid Go
// identifiers and resolves the collisions the renaming may introduce.
func normalizeArgs(args abi.Arguments) abi.Arguments {
	args = slices.Clone(args)
	used := make(map[string]bool)

	for i, input := range args {
		if input.Name == "" || isKeyWord(input.Name) || capitalise(input.Name) == "" {
			args[i].Name = fmt.Sprintf("arg%d", i)
		}
		args[i].Name = abi.ResolveNameConflict(args[i].Name, func(s string) bool { return used[capitalise(s)] })
		used[capitalise(args[i].Name)] = true
	}
	return args
}

// typeSuffix derives an identifier fragment from the given parameter types.
// It is appended to the names of overloaded methods and events in place of
// the index suffix assigned by the ABI parser, so that the generated
// identifiers stay stable when further overloads are added.
func typeSuffix(inputs abi.Arguments) string {
	var b strings.Builder
	for _, input := range inputs {
		b.WriteString(typeToken(input.Type))
	}
	return b.String()
}

// typeToken renders a single ABI type as a Go identifier fragment.
func typeToken(t abi.Type) string {
	switch t.T {
	case abi.SliceTy:
		return typeToken(*t.Elem) + "Slice"
	case abi.ArrayTy:
		return fmt.Sprintf("%sArray%d", typeToken(*t.Elem), t.Size)
	case abi.TupleTy:
		if t.TupleRawName != "" {
			return t.TupleRawName
		}
		var b strings.Builder
		for _, elem := range t.TupleElems {
			b.WriteString(typeToken(*elem))
		}
		return b.String()
	default:
		return capitalise(t.String())
	}
}

// registerIdentifier normalizes the given name to a capitalized Go identifier,
// resolves any collision with a previously registered one and marks the chosen
// name as used.
func (cb *contractBinder) registerIdentifier(identifiers map[string]bool, name string) string {
	normalized := capitalise(name)
	// Name shouldn't start with a digit. It will make the generated code invalid.
	if len(normalized) > 0 && unicode.IsDigit(rune(normalized[0])) {
		normalized = fmt.Sprintf("E%s", normalized)
	}
	normalized = abi.ResolveNameConflict(normalized, func(s string) bool { return identifiers[s] })
	identifiers[normalized] = true
	return normalized
}

// bindMethod normalizes a method and registers it to be emitted in the bindings.
func (cb *contractBinder) bindMethod(original abi.Method) {
	name := alias(cb.binder.aliases, original.Name)
	// Overloaded methods are distinguished by a suffix derived from their
	// parameter types in place of the index suffix assigned by the ABI parser.
	if name == original.Name && original.Name != original.RawName {
		name = original.RawName + typeSuffix(original.Inputs)
	}
	normalizedName := cb.registerIdentifier(cb.callIdentifiers, name)

	normalized := original
	normalized.Name = normalizedName
	normalized.Inputs = normalizeArgs(original.Inputs)
	normalized.Outputs = normalizeArgs(original.Outputs)

	for _, input := range normalized.Inputs {
		if hasStruct(input.Type) {
			bindStructType(input.Type, cb.binder.structs)
		}
	}
	for _, output := range normalized.Outputs {
		if hasStruct(output.Type) {
			bindStructType(output.Type, cb.binder.structs)
		}
	}
	cb.calls[original.Name] = &tmplMethod{Original: original, Normalized: normalized, Structured: len(original.Outputs) > 1}
}

// bindEvent normalizes an event and registers it to be emitted in the bindings.
func (cb *contractBinder) bindEvent(original abi.Event) {
	// Skip anonymous events as they don't support explicit filtering
	if original.Anonymous {
		return
	}
	name := alias(cb.binder.aliases, original.Name)
	if name == original.Name && original.Name != original.RawName {
		name = original.RawName + typeSuffix(original.Inputs)
	}
	normalizedName := cb.registerIdentifier(cb.eventIdentifiers, name)

	normalized := original
	normalized.Name = normalizedName
	normalized.Inputs = normalizeArgs(original.Inputs)
	for _, input := range normalized.Inputs {
		if hasStruct(input.Type) {
			bindStructType(input.Type, cb.binder.structs)
		}
	}
	cb.events[original.Name] = &tmplEvent{Original: original, Normalized: normalized}
}

// bindError normalizes an error and registers it to be emitted in the bindings.
func (cb *contractBinder) bindError(original abi.Error) {
	normalizedName := cb.registerIdentifier(cb.errorIdentifiers, alias(cb.binder.aliases, original.Name))

	normalized := original
	normalized.Name = normalizedName
	normalized.Inputs = normalizeArgs(original.Inputs)
	for _, input := range normalized.Inputs {
		if hasStruct(input.Type) {
			bindStructType(input.Type, cb.binder.structs)
		}
	}
	cb.errors[original.Name] = &tmplError{Original: original, Normalized: normalized}
}

// BindV2 generates a Go wrapper around a contract ABI. This wrapper isn't meant
// to be used as is in client code, but rather as an intermediate struct which
// enforces compile time type safety and naming convention as opposed to having to
// manually maintain hard coded strings that break on runtime.
func BindV2(types []string, abis []string, bytecodes []string, pkg string, libs map[string]string, aliases map[string]string) (string, error) {
	b := binder{
		contracts: make(map[string]*tmplContractV2),
		structs:   make(map[string]*tmplStruct),
		aliases:   aliases,
	}
	for i := 0; i < len(types); i++ {
		// Parse the actual ABI to generate the binding for
		evmABI, err := abi.JSON(strings.NewReader(abis[i]))
		if err != nil {
			return "", err
		}

		for _, input := range evmABI.Constructor.Inputs {
			if hasStruct(input.Type) {
				bindStructType(input.Type, b.structs)
			}
		}

		cb := contractBinder{
			binder: &b,
			calls:  make(map[string]*tmplMethod),
			events: make(map[string]*tmplEvent),
			errors: make(map[string]*tmplError),

			callIdentifiers:  make(map[string]bool),
			eventIdentifiers: make(map[string]bool),
			errorIdentifiers: make(map[string]bool),
		}
		// Bind in sorted order to keep the resolution of colliding
		// identifiers deterministic.
		for _, name := range slices.Sorted(maps.Keys(evmABI.Methods)) {
			cb.bindMethod(evmABI.Methods[name])
		}
		for _, name := range slices.Sorted(maps.Keys(evmABI.Events)) {
			cb.bindEvent(evmABI.Events[name])
		}
		for _, name := range slices.Sorted(maps.Keys(evmABI.Errors)) {
			cb.bindError(evmABI.Errors[name])
		}
		b.contracts[types[i]] = newTmplContractV2(types[i], abis[i], bytecodes[i], evmABI.Constructor, &cb)
	}

	invertedLibs := make(map[string]string)
	for pattern, name := range libs {
		invertedLibs[name] = pattern
	}

	data := tmplDataV2{
		Package:   pkg,
		Contracts: b.contracts,
		Libraries: invertedLibs,
		Structs:   b.structs,
	}

	// Record the direct library dependencies of each contract from the link
	// placeholders left in its creation bytecode.
	for _, contract := range data.Contracts {
		matches := regexp.MustCompile(`__\$([a-f0-9]+)\$__`).FindAllStringSubmatch(contract.InputBin, -1)
		for _, match := range matches {
			pattern := match[1]
			contract.Libraries[libs[pattern]] = pattern
		}
	}
	// Expand the direct dependencies into the transitive closures consumed by
	// the deployment helpers.
	for _, contract := range data.Contracts {
		for name, pattern := range contract.Libraries {
			collectDeps(name, pattern, data.Contracts, contract.AllLibraries)
		}
	}

	buffer := new(bytes.Buffer)
	funcs := map[string]interface{}{
		"bindtype":      bindType,
		"bindtopictype": bindTopicType,
		"capitalise":    capitalise,
		"decapitalise":  decapitalise,
		"add": func(val1, val2 int) int {
			return val1 + val2
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).Parse(tmplSourceV2))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	// Pass the code through gofmt to clean it up
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return "", fmt.Errorf("%v\n%s", err, buffer)
	}
	return string(code), nil
}

// collectDeps adds the named library and its transitive dependencies to deps.
func collectDeps(name string, pattern string, contracts map[string]*tmplContractV2, deps map[string]string) {
	if _, ok := deps[name]; ok {
		return
	}
	deps[name] = pattern
	if dep, ok := contracts[name]; ok {
		for depName, depPattern := range dep.Libraries {
			collectDeps(depName, depPattern, contracts, deps)
		}
	}
}
