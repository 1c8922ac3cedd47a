/*
Package codec implements the wire-format instruction codec for Anchor-style
Solana programs.

It derives the 8-byte method discriminator from a method name, serializes
heterogeneous typed arguments into a contiguous instruction payload, and
decodes raw return payloads against a user-declared field layout.

# Wire format

  - The discriminator always occupies the first 8 bytes of an encoded
    payload: sha256("global:" + snake_case(method))[:8].
  - Integers are little-endian, fixed-width, two's-complement for signed
    kinds.
  - Strings and byte blobs carry a 4-byte little-endian length prefix
    followed by the raw content.
  - Account identifiers are exactly 32 raw bytes, displayed base58.

# Concurrency

All operations are synchronous pure functions over caller-supplied inputs.
Each encode call owns a private fixed-capacity buffer and each decode call a
private read cursor, so the package is safe for concurrent use without
locking.
*/
package codec
