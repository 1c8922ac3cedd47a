package codec

import (
	"encoding/binary"
	"math/big"
	"strings"

	sollib "github.com/gagliardetto/solana-go"
)

// EncodeCapacity is the fixed capacity of an encode call's buffer. Exceeding
// it fails the whole call with BufferOverflowError.
const EncodeCapacity = 1024

// cursor is a fixed-capacity write buffer owned by exactly one encode call.
type cursor struct {
	buf [EncodeCapacity]byte
	off int
}

func (c *cursor) write(arg string, p []byte) error {
	if c.off+len(p) > len(c.buf) {
		return &BufferOverflowError{Arg: arg, Need: c.off + len(p), Capacity: len(c.buf)}
	}
	copy(c.buf[c.off:], p)
	c.off += len(p)

	return nil
}

// bytes returns a copy of the written region, trimmed to the exact number of
// bytes written.
func (c *cursor) bytes() []byte {
	out := make([]byte, c.off)
	copy(out, c.buf[:c.off])

	return out
}

// Encode serializes a method invocation into its raw instruction payload: the
// method's 8-byte discriminator followed by each argument encoded in declared
// order. Argument values are supplied as text keyed by argument name; a
// missing integer value defaults to 0 and a missing boolean to false.
//
// Encode is a pure function. Any error names the offending argument and is
// fatal to the whole call.
func Encode(sig MethodSignature, values map[string]string) ([]byte, error) {
	cur := &cursor{}

	disc := Discriminator(sig.Name)
	if err := cur.write(sig.Name, disc[:]); err != nil {
		return nil, err
	}

	for _, arg := range sig.Args {
		if err := encodeArg(cur, arg, values[arg.Name]); err != nil {
			return nil, err
		}
	}

	return cur.bytes(), nil
}

func encodeArg(cur *cursor, spec ArgSpec, value string) error {
	kind := spec.Type.Resolve()
	switch {
	case kind.IsInteger():
		return encodeInt(cur, spec.Name, kind, value)
	case kind == KindBool:
		return encodeBool(cur, spec.Name, value)
	case kind == KindPubkey:
		return encodePubkey(cur, spec.Name, value)
	default:
		// string, bytes, and the unknown/composite fallback all share the
		// length-prefixed framing over the raw text.
		return encodeLengthPrefixed(cur, spec.Name, []byte(value))
	}
}

func encodeInt(cur *cursor, arg string, k Kind, value string) error {
	text := strings.TrimSpace(value)
	if text == "" {
		text = "0"
	}

	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return &ParseError{Arg: arg, Value: value, Type: string(k)}
	}
	if err := validateRange(arg, k, v); err != nil {
		return err
	}

	return cur.write(arg, intBytes(v, k))
}

// intBytes renders v little-endian over the kind's exact byte width, using
// two's-complement for negative values.
func intBytes(v *big.Int, k Kind) []byte {
	bits := uint(k.Bits())
	if v.Sign() < 0 {
		// v + 2^bits yields the two's-complement bit pattern.
		v = new(big.Int).Add(v, new(big.Int).Lsh(one, bits))
	}

	out := make([]byte, bits/8)
	raw := v.Bytes() // big-endian, range-checked to fit
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}

	return out
}

func encodeBool(cur *cursor, arg string, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0":
		return cur.write(arg, []byte{0x00})
	case "true", "1":
		return cur.write(arg, []byte{0x01})
	default:
		return &InvalidBooleanError{Arg: arg, Value: value}
	}
}

func encodePubkey(cur *cursor, arg string, value string) error {
	pubkey, err := sollib.PublicKeyFromBase58(strings.TrimSpace(value))
	if err != nil {
		return &InvalidAccountIdentifierError{Arg: arg, Value: value, Err: err}
	}

	return cur.write(arg, pubkey.Bytes())
}

func encodeLengthPrefixed(cur *cursor, arg string, p []byte) error {
	framed := make([]byte, 4+len(p))
	binary.LittleEndian.PutUint32(framed, uint32(len(p))) //nolint:gosec // bounded by cursor capacity
	copy(framed[4:], p)

	return cur.write(arg, framed)
}
