package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	sollib "github.com/gagliardetto/solana-go"
)

// ReturnFieldSpec is one entry of a user-declared layout describing how to
// carve a raw return payload. A blank name defaults to "field_N" at decode
// time.
type ReturnFieldSpec struct {
	Name string `json:"name"`
	Type Kind   `json:"type"`
}

// DecodedField is one decoded layout entry: either a textual value or an
// embedded decode-error message, never both.
type DecodedField struct {
	Name  string `json:"name"`
	Type  Kind   `json:"type"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// reader is a read cursor owned by exactly one decode call.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) take(n int) ([]byte, bool) {
	if n < 0 || r.remaining() < n {
		return nil, false
	}
	p := r.buf[r.off : r.off+n]
	r.off += n

	return p, true
}

// Decode walks a raw return payload against a user-declared field layout and
// produces decoded values in layout order.
//
// Decoding stops at the first field that cannot be satisfied from the
// remaining bytes: that field carries the decode-error message as its value
// and the remaining layout entries are omitted. Decode never returns an
// error; callers always receive a well-formed, possibly partial, field list.
//
// An empty layout with a payload of exactly 8 bytes additionally reports a
// default interpretation as a little-endian u64, alongside the raw bytes.
func Decode(payload []byte, layout []ReturnFieldSpec) []DecodedField {
	if len(layout) == 0 {
		return decodeDefault(payload)
	}

	r := &reader{buf: payload}
	fields := make([]DecodedField, 0, len(layout))
	for i, spec := range layout {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("field_%d", i)
		}

		value, err := decodeField(r, spec.Type)
		if err != nil {
			fields = append(fields, DecodedField{Name: name, Type: spec.Type, Error: err.Error()})
			break
		}
		fields = append(fields, DecodedField{Name: name, Type: spec.Type, Value: value})
	}

	return fields
}

// decodeDefault handles the empty-layout case: the raw bytes are always
// reported, and an 8-byte payload gets a u64 reading as well.
func decodeDefault(payload []byte) []DecodedField {
	fields := []DecodedField{{
		Name:  "raw_bytes",
		Type:  KindBytes,
		Value: hex.EncodeToString(payload),
	}}

	if len(payload) == 8 {
		fields = append(fields, DecodedField{
			Name:  "as_u64",
			Type:  KindU64,
			Value: new(big.Int).SetUint64(binary.LittleEndian.Uint64(payload)).String(),
		})
	}

	return fields
}

func decodeField(r *reader, k Kind) (string, error) {
	switch {
	case k.IsInteger():
		return decodeInt(r, k)
	case k == KindBool:
		p, ok := r.take(1)
		if !ok {
			return "", insufficientErr(k, 1, r.remaining())
		}
		if p[0] != 0 {
			return "true", nil
		}

		return "false", nil
	case k == KindPubkey:
		p, ok := r.take(sollib.PublicKeyLength)
		if !ok {
			return "", insufficientErr(k, sollib.PublicKeyLength, r.remaining())
		}

		return sollib.PublicKeyFromBytes(p).String(), nil
	case k == KindString:
		p, err := decodeLengthPrefixed(r, k)
		if err != nil {
			return "", err
		}

		return string(p), nil
	case k == KindBytes:
		p, err := decodeLengthPrefixed(r, k)
		if err != nil {
			return "", err
		}

		return hex.EncodeToString(p), nil
	default:
		return "", fmt.Errorf("unsupported type %q", k)
	}
}

func decodeInt(r *reader, k Kind) (string, error) {
	width := k.Bits() / 8
	p, ok := r.take(width)
	if !ok {
		return "", insufficientErr(k, width, r.remaining())
	}

	// Reverse the little-endian bytes for big.Int's big-endian SetBytes.
	be := make([]byte, len(p))
	for i, b := range p {
		be[len(p)-1-i] = b
	}

	v := new(big.Int).SetBytes(be)
	if k.Signed() && v.Bit(k.Bits()-1) == 1 {
		// Two's-complement: subtract 2^bits to recover the negative value.
		v.Sub(v, new(big.Int).Lsh(one, uint(k.Bits())))
	}

	return v.String(), nil
}

func decodeLengthPrefixed(r *reader, k Kind) ([]byte, error) {
	prefix, ok := r.take(4)
	if !ok {
		return nil, insufficientErr(k, 4, r.remaining())
	}

	n := int(binary.LittleEndian.Uint32(prefix))
	p, ok := r.take(n)
	if !ok {
		return nil, insufficientErr(k, n, r.remaining())
	}

	return p, nil
}

func insufficientErr(k Kind, need, have int) error {
	return fmt.Errorf("insufficient bytes for %s: need %d, have %d", k, need, have)
}
