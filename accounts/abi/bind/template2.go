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
	"strings"
	"unicode"

	"github.com/CodeSandwich/ethers-go/accounts/abi"
)

type tmplContractV2 struct {
	Type         string                 // Type name of the main contract binding
	InputABI     string                 // JSON ABI used as the input to generate the binding from
	InputBin     string                 // Optional EVM bytecode used to generate deploy code from
	Constructor  abi.Method             // Contract constructor for deploy parametrization
	Calls        map[string]*tmplMethod // All contract methods (excluding fallback, receive)
	Events       map[string]*tmplEvent  // Contract events accessors
	Libraries    map[string]string      // Direct library dependencies of the contract
	Errors       map[string]*tmplError  // All errors defined
	AllLibraries map[string]string      // Direct and transitive library dependencies of the contract
}

func newTmplContractV2(typ string, abiStr string, bytecode string, constructor abi.Method, cb *contractBinder) *tmplContractV2 {
	// Strip any whitespace from the JSON ABI
	strippedABI := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, abiStr)
	constructor.Inputs = normalizeArgs(constructor.Inputs)
	return &tmplContractV2{
		abi.ToCamelCase(typ),
		strings.ReplaceAll(strippedABI, "\"", "\\\""),
		strings.TrimPrefix(strings.TrimSpace(bytecode), "0x"),
		constructor,
		cb.calls,
		cb.events,
		make(map[string]string),
		cb.errors,
		make(map[string]string),
	}
}

type tmplDataV2 struct {
	Package   string                     // Name of the package to use for the generated bindings
	Contracts map[string]*tmplContractV2 // Contracts that will be emitted in the bindings (keyed by contract name)
	Libraries map[string]string          // Map of the contract's name to link pattern
	Structs   map[string]*tmplStruct     // Contract struct type definitions
}

// tmplError is a wrapper around an abi.Error that contains a few preprocessed
// and cached data fields.
type tmplError struct {
	Original   abi.Error
	Normalized abi.Error
}

// tmplSourceV2 is the Go source template that the generated Go contract binding
// for abigen v2 is based on.
const tmplSourceV2 = `
// Code generated via abigen V2 - DO NOT EDIT.
// This file is a generated binding and any manual changes will be lost.

package {{.Package}}

import (
	"errors"
	"math/big"

	"github.com/CodeSandwich/ethers-go/accounts/abi"
	"github.com/CodeSandwich/ethers-go/accounts/abi/bind"
	"github.com/CodeSandwich/ethers-go/common"
	"github.com/CodeSandwich/ethers-go/core/types"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = errors.New
	_ = big.NewInt
	_ = bind.Bind
	_ = common.Big1
	_ = types.BloomLookup
	_ = abi.ConvertType
)

{{$structs := .Structs}}
{{range $structs}}
// {{.Name}} is an auto generated low-level Go binding around an user-defined struct.
type {{.Name}} struct {
	{{- range $field := .Fields}}
	{{$field.Name}} {{$field.Type}}
	{{- end}}
}
{{end}}

{{range $contract := .Contracts}}
{{if $contract.AllLibraries}}var {{$contract.Type}}LibraryDeps = []*bind.MetaData{
	{{- range $name, $pattern := $contract.AllLibraries}}
	{{capitalise $name}}MetaData,
	{{- end}}
}
{{else}}var {{$contract.Type}}LibraryDeps = []*bind.MetaData{}
{{end}}
// TODO: convert this type to value type after everything works.
// {{$contract.Type}}MetaData contains all meta data concerning the {{$contract.Type}} contract.
var {{$contract.Type}}MetaData = &bind.MetaData{
	ABI: "{{.InputABI}}",
	{{with index $.Libraries $contract.Type}}Pattern: "{{.}}",
	{{end}}{{if .InputBin}}Bin: "0x{{.InputBin}}",
	{{end}}{{if $contract.Libraries}}Deps: []*bind.MetaData{
		{{- range $name, $pattern := $contract.Libraries}}
		{{capitalise $name}}MetaData,
		{{- end}}
	},
	{{end}}}

// {{.Type}} is an auto generated Go binding around an Ethereum contract.
type {{.Type}} struct {
	abi abi.ABI
}

// New{{.Type}} creates a new instance of {{.Type}}.
func New{{.Type}}() (*{{.Type}}, error) {
	parsed, err := {{.Type}}MetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &{{.Type}}{abi: *parsed}, nil
}

func (_{{$contract.Type}} *{{$contract.Type}}) PackConstructor({{range .Constructor.Inputs}}{{.Name}} {{bindtype .Type $structs}}, {{end}}) ([]byte, error) {
	return _{{$contract.Type}}.abi.Pack(""{{range .Constructor.Inputs}}, {{.Name}}{{end}})
}

{{range .Calls}}
// {{.Normalized.Name}} is a free data retrieval call binding the contract method 0x{{printf "%x" .Original.ID}}.
//
// Solidity: {{.Original.String}}
func (_{{$contract.Type}} *{{$contract.Type}}) Pack{{.Normalized.Name}}({{range .Normalized.Inputs}}{{.Name}} {{bindtype .Type $structs}}, {{end}}) ([]byte, error) {
	return _{{$contract.Type}}.abi.Pack("{{.Original.Name}}"{{range .Normalized.Inputs}}, {{.Name}}{{end}})
}
{{if .Normalized.Outputs}}{{if .Structured}}
type {{.Normalized.Name}}Output struct {
	{{- range .Normalized.Outputs}}
	{{capitalise .Name}} {{bindtype .Type $structs}}
	{{- end}}
}
{{end}}
func (_{{$contract.Type}} *{{$contract.Type}}) Unpack{{.Normalized.Name}}(data []byte) ({{if .Structured}}{{.Normalized.Name}}Output,{{else}}{{range .Normalized.Outputs}}{{bindtype .Type $structs}},{{end}}{{end}} error) {
	out, err := _{{$contract.Type}}.abi.Unpack("{{.Original.Name}}", data)
	{{if .Structured}}
	outstruct := new({{.Normalized.Name}}Output)
	if err != nil {
		return *outstruct, err
	}
	{{range $i, $t := .Normalized.Outputs}}
	outstruct.{{capitalise .Name}} = *abi.ConvertType(out[{{$i}}], new({{bindtype .Type $structs}})).(*{{bindtype .Type $structs}}){{end}}

	return *outstruct, err
	{{else}}
	if err != nil {
		return {{range .Normalized.Outputs}}*new({{bindtype .Type $structs}}), {{end}} err
	}
	{{range $i, $t := .Normalized.Outputs}}
	out{{$i}} := *abi.ConvertType(out[{{$i}}], new({{bindtype .Type $structs}})).(*{{bindtype .Type $structs}}){{end}}

	return {{range $i, $t := .Normalized.Outputs}}out{{$i}}, {{end}} err
	{{end}}
}
{{end}}
{{end}}
{{if .Errors}}func (_{{$contract.Type}} *{{$contract.Type}}) UnpackError(raw []byte) any {
{{$i := 0}}{{range $k, $v := .Errors}}
	{{if eq $i 0}}if{{else}}} else if{{end}} val, err := _{{$contract.Type}}.Unpack{{$v.Normalized.Name}}Error(raw); err == nil {
		return val
{{$i = add $i 1}}{{end}}
	}
	return nil
}
{{end}}
{{range .Errors}}
// {{$contract.Type}}{{.Normalized.Name}} represents a {{.Normalized.Name}} error raised by the {{$contract.Type}} contract.
type {{$contract.Type}}{{.Normalized.Name}} struct {
	{{- range .Normalized.Inputs}}
	{{capitalise .Name}} {{bindtype .Type $structs}}
	{{- end}}
}

func {{$contract.Type}}{{.Normalized.Name}}ErrorID() common.Hash {
	return common.HexToHash("{{.Original.ID}}")
}

func (_{{$contract.Type}} *{{$contract.Type}}) Unpack{{.Normalized.Name}}Error(raw []byte) (*{{$contract.Type}}{{.Normalized.Name}}, error) {
	errName := "{{.Original.Name}}"
	out := new({{$contract.Type}}{{.Normalized.Name}})
	if err := _{{$contract.Type}}.abi.UnpackIntoInterface(out, errName, raw); err != nil {
		return nil, err
	}
	return out, nil
}
{{end}}
{{range .Events}}
// {{$contract.Type}}{{.Normalized.Name}} represents a {{.Normalized.Name}} event raised by the {{$contract.Type}} contract.
type {{$contract.Type}}{{.Normalized.Name}} struct {
	{{- range .Normalized.Inputs}}
	{{capitalise .Name}} {{if .Indexed}}{{bindtopictype .Type $structs}}{{else}}{{bindtype .Type $structs}}{{end}}
	{{- end}}
	Raw *types.Log // Blockchain specific contextual infos
}

func {{$contract.Type}}{{.Normalized.Name}}EventID() common.Hash {
	return common.HexToHash("{{.Original.ID}}")
}

func (_{{$contract.Type}} *{{$contract.Type}}) Unpack{{.Normalized.Name}}Event(log *types.Log) (*{{$contract.Type}}{{.Normalized.Name}}, error) {
	event := "{{.Original.Name}}"
	if log.Topics[0] != _{{$contract.Type}}.abi.Events[event].ID {
		return nil, errors.New("event signature mismatch")
	}
	out := new({{$contract.Type}}{{.Normalized.Name}})
	if len(log.Data) > 0 {
		if err := _{{$contract.Type}}.abi.UnpackIntoInterface(out, event, log.Data); err != nil {
			return nil, err
		}
	}
	var indexed abi.Arguments
	for _, arg := range _{{$contract.Type}}.abi.Events[event].Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopics(out, indexed, log.Topics[1:]); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}
{{end}}
{{end}}
`
