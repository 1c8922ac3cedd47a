package idl

import "github.com/Masterminds/semver/v3"

// Format classifies an IDL document's layout generation.
type Format string

const (
	// FormatLegacy covers IDLs emitted before anchor 0.30: top-level
	// name/version, isMut/isSigner account flags, no explicit
	// discriminators.
	FormatLegacy Format = "legacy"

	// FormatCurrent covers IDLs carrying metadata.spec, emitted by anchor
	// 0.30 and later: writable/signer account flags and explicit
	// discriminator byte arrays.
	FormatCurrent Format = "current"
)

// currentSpec matches any published IDL spec version.
var currentSpec = mustConstraint(">= 0.1.0")

// Format classifies the document by its metadata.spec version. Documents
// without a parseable spec version are legacy.
func (d *Document) Format() Format {
	v, err := semver.NewVersion(d.Metadata.Spec)
	if err != nil {
		return FormatLegacy
	}
	if currentSpec.Check(v) {
		return FormatCurrent
	}

	return FormatLegacy
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}

	return c
}
