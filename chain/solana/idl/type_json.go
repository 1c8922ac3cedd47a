package idl

import (
	"encoding/json"
	"fmt"

	"github.com/Treasure-cd/ChainCall/chain/solana/codec"
)

// TypeJSON is the string-or-shaped-object type form an IDL declares for an
// argument. It unmarshals into a codec.TypeDescriptor.
//
// Recognized shapes:
//
//	"u64"                     primitive name
//	{"vec": T}                variable-length sequence
//	{"option": T}             optional value
//	{"coption": T}            C-style optional value
//	{"array": [T, N]}         fixed-length array
//	{"defined": "Name"}       named type reference (legacy)
//	{"defined": {"name": X}}  named type reference (current)
type TypeJSON struct {
	desc         codec.TypeDescriptor
	unrecognized bool
}

// Descriptor returns the parsed type descriptor.
func (t TypeJSON) Descriptor() codec.TypeDescriptor { return t.desc }

// String renders the type in the schema's textual form.
func (t TypeJSON) String() string { return t.desc.String() }

// UnmarshalJSON implements json.Unmarshaler.
func (t *TypeJSON) UnmarshalJSON(data []byte) error {
	desc, recognized, err := parseType(data)
	if err != nil {
		return err
	}
	t.desc = desc
	t.unrecognized = !recognized

	return nil
}

// MarshalJSON implements json.Marshaler, round-tripping primitives and named
// references to the string form the schema uses.
func (t TypeJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.desc.String())
}

func parseType(data []byte) (codec.TypeDescriptor, bool, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return codec.Primitive(name), true, nil
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return codec.TypeDescriptor{}, false, fmt.Errorf("invalid type declaration %s", data)
	}

	if raw, ok := shape["vec"]; ok {
		elem, recognized, err := parseType(raw)
		if err != nil {
			return codec.TypeDescriptor{}, false, err
		}

		return codec.Vector(elem), recognized, nil
	}
	if raw, ok := shape["option"]; ok {
		elem, recognized, err := parseType(raw)
		if err != nil {
			return codec.TypeDescriptor{}, false, err
		}

		return codec.Option(elem), recognized, nil
	}
	if raw, ok := shape["coption"]; ok {
		elem, recognized, err := parseType(raw)
		if err != nil {
			return codec.TypeDescriptor{}, false, err
		}

		return codec.CompatOption(elem), recognized, nil
	}
	if raw, ok := shape["array"]; ok {
		return parseArray(raw)
	}
	if raw, ok := shape["defined"]; ok {
		return parseDefined(raw)
	}

	// Unknown object shape: resolves to the unknown kind so the encoder
	// applies its text fallback.
	return codec.Primitive("unknown"), false, nil
}

// parseArray handles the {"array": [elem, length]} pair form.
func parseArray(data []byte) (codec.TypeDescriptor, bool, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return codec.TypeDescriptor{}, false, fmt.Errorf("invalid array type declaration %s", data)
	}

	elem, recognized, err := parseType(pair[0])
	if err != nil {
		return codec.TypeDescriptor{}, false, err
	}

	var length int
	if err := json.Unmarshal(pair[1], &length); err != nil {
		return codec.TypeDescriptor{}, false, fmt.Errorf("invalid array length %s", pair[1])
	}

	return codec.Array(elem, length), recognized, nil
}

// parseDefined handles both the legacy string and the current {"name": ...}
// reference forms.
func parseDefined(data []byte) (codec.TypeDescriptor, bool, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return codec.Defined(name), true, nil
	}

	var ref struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &ref); err != nil || ref.Name == "" {
		return codec.TypeDescriptor{}, false, fmt.Errorf("invalid defined type reference %s", data)
	}

	return codec.Defined(ref.Name), true, nil
}
