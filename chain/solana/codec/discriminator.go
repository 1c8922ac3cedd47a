package codec

import (
	"crypto/sha256"
	"strings"
	"unicode"
)

const (
	// DiscriminatorSize is the number of bytes prefixed to every instruction
	// payload to identify the method being invoked.
	DiscriminatorSize = 8

	// GlobalNamespace is the namespace instruction discriminators hash under.
	GlobalNamespace = "global"

	// AccountNamespace is the namespace account discriminators hash under.
	AccountNamespace = "account"
)

// Discriminator derives the 8-byte identifier for a program method.
//
// The method name is normalized to snake_case, prefixed with "global:", and
// hashed with SHA-256; the first 8 bytes of the digest form the
// discriminator. Deterministic, any name normalizes.
func Discriminator(method string) [DiscriminatorSize]byte {
	return namespacedDiscriminator(GlobalNamespace, toSnakeCase(method))
}

// AccountDiscriminator derives the 8-byte identifier for a named account
// type. Account names hash in their declared casing, without normalization.
func AccountDiscriminator(name string) [DiscriminatorSize]byte {
	return namespacedDiscriminator(AccountNamespace, name)
}

func namespacedDiscriminator(namespace, name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte(namespace + ":" + name))

	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])

	return d
}

// toSnakeCase inserts an underscore before every non-initial uppercase letter
// and lowercases the result, so "setAuthority" becomes "set_authority".
func toSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
