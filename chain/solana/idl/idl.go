// Package idl models Anchor IDL documents: the published interface schemas
// that describe a Solana program's callable methods.
//
// The package only parses caller-supplied JSON documents; fetching an IDL
// from the chain and caching it belong to the caller.
package idl

import (
	"encoding/json"
	"fmt"

	"github.com/Treasure-cd/ChainCall/chain/solana/codec"
	"github.com/Treasure-cd/ChainCall/pkg/logger"
)

// Document is a parsed Anchor IDL. Field presence varies between the legacy
// and current IDL formats; the accessor methods paper over the differences.
type Document struct {
	Address string `json:"address,omitempty"`

	// Legacy IDLs carry name and version at the top level; current ones
	// nest them under metadata.
	Name     string   `json:"name,omitempty"`
	Version  string   `json:"version,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`

	Instructions []Instruction `json:"instructions"`
	Accounts     []Account     `json:"accounts,omitempty"`
	Types        []TypeDef     `json:"types,omitempty"`
	Events       []Event       `json:"events,omitempty"`
	Errors       []ErrorDef    `json:"errors,omitempty"`
}

// Metadata is the current-format IDL header.
type Metadata struct {
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Spec        string `json:"spec,omitempty"`
	Description string `json:"description,omitempty"`
}

// Instruction describes one callable method: its name, discriminator,
// ordered accounts, and ordered arguments.
type Instruction struct {
	Name          string        `json:"name"`
	Discriminator Discriminator `json:"discriminator,omitempty"`
	Accounts      []AccountMeta `json:"accounts"`
	Args          []Arg         `json:"args"`
	Docs          []string      `json:"docs,omitempty"`
}

// AccountMeta is one account an instruction touches. Both the legacy
// (isMut/isSigner/isOptional) and current (writable/signer/optional) flag
// spellings are honored; use the accessor methods.
type AccountMeta struct {
	Name       string   `json:"name"`
	IsMut      *bool    `json:"isMut,omitempty"`
	Writable   *bool    `json:"writable,omitempty"`
	IsSigner   *bool    `json:"isSigner,omitempty"`
	Signer     *bool    `json:"signer,omitempty"`
	IsOptional *bool    `json:"isOptional,omitempty"`
	Optional   *bool    `json:"optional,omitempty"`
	Docs       []string `json:"docs,omitempty"`
}

// IsWritable reports whether the account is declared writable under either
// flag spelling.
func (a AccountMeta) IsWritable() bool {
	return boolFlag(a.Writable, a.IsMut)
}

// IsSignerAccount reports whether the account must sign under either flag
// spelling.
func (a AccountMeta) IsSignerAccount() bool {
	return boolFlag(a.Signer, a.IsSigner)
}

// IsOptionalAccount reports whether the account is optional under either
// flag spelling.
func (a AccountMeta) IsOptionalAccount() bool {
	return boolFlag(a.Optional, a.IsOptional)
}

func boolFlag(flags ...*bool) bool {
	for _, f := range flags {
		if f != nil {
			return *f
		}
	}

	return false
}

// Arg is one named, typed instruction argument.
type Arg struct {
	Name string   `json:"name"`
	Type TypeJSON `json:"type"`
}

// Account is a top-level account type declaration.
type Account struct {
	Name          string          `json:"name"`
	Discriminator Discriminator   `json:"discriminator,omitempty"`
	Type          json.RawMessage `json:"type,omitempty"`
}

// TypeDef is a named struct or enum declaration. The body is kept raw since
// the codec gives composite types no structural encoding.
type TypeDef struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type,omitempty"`
}

// Event is a program event declaration.
type Event struct {
	Name          string          `json:"name"`
	Discriminator Discriminator   `json:"discriminator,omitempty"`
	Fields        json.RawMessage `json:"fields,omitempty"`
}

// ErrorDef is a program error declaration.
type ErrorDef struct {
	Code int    `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg,omitempty"`
}

// Parse decodes an IDL JSON document and normalizes it: instructions missing
// an explicit discriminator (legacy IDLs) get one computed from the method
// name, and unrecognized argument type shapes are logged.
func Parse(lggr logger.Logger, data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid IDL document: %w", err)
	}

	for i := range doc.Instructions {
		ix := &doc.Instructions[i]
		if len(ix.Discriminator) == 0 {
			d := codec.Discriminator(ix.Name)
			ix.Discriminator = d[:]
			lggr.Debugw("Computed missing instruction discriminator",
				"instruction", ix.Name)
		}

		for _, arg := range ix.Args {
			if arg.Type.unrecognized {
				lggr.Warnw("Unrecognized argument type shape, falling back to text encoding",
					"instruction", ix.Name,
					"arg", arg.Name)
			}
		}
	}

	lggr.Debugw("Parsed IDL document",
		"program", doc.ProgramName(),
		"format", doc.Format(),
		"instructions", len(doc.Instructions))

	return &doc, nil
}

// ProgramName returns the program name from whichever format field carries it.
func (d *Document) ProgramName() string {
	if d.Metadata.Name != "" {
		return d.Metadata.Name
	}

	return d.Name
}

// ProgramVersion returns the program version from whichever format field
// carries it.
func (d *Document) ProgramVersion() string {
	if d.Metadata.Version != "" {
		return d.Metadata.Version
	}

	return d.Version
}

// Method returns the codec method signature for the named instruction.
func (d *Document) Method(name string) (codec.MethodSignature, error) {
	for _, ix := range d.Instructions {
		if ix.Name == name {
			return ix.Signature(), nil
		}
	}

	return codec.MethodSignature{}, fmt.Errorf("instruction %q not found in IDL", name)
}

// Methods returns the codec method signatures for every instruction, in
// declared order.
func (d *Document) Methods() []codec.MethodSignature {
	sigs := make([]codec.MethodSignature, 0, len(d.Instructions))
	for _, ix := range d.Instructions {
		sigs = append(sigs, ix.Signature())
	}

	return sigs
}

// Signature converts the instruction to the codec's method signature form.
func (ix Instruction) Signature() codec.MethodSignature {
	sig := codec.MethodSignature{
		Name:     ix.Name,
		Args:     make([]codec.ArgSpec, 0, len(ix.Args)),
		Accounts: make([]codec.AccountSpec, 0, len(ix.Accounts)),
	}
	for _, arg := range ix.Args {
		sig.Args = append(sig.Args, codec.ArgSpec{
			Name: arg.Name,
			Type: arg.Type.Descriptor(),
		})
	}
	for _, acc := range ix.Accounts {
		sig.Accounts = append(sig.Accounts, codec.AccountSpec{
			Name:     acc.Name,
			Signer:   acc.IsSignerAccount(),
			Writable: acc.IsWritable(),
			Optional: acc.IsOptionalAccount(),
		})
	}

	return sig
}
