package codec

import "fmt"

// Kind identifies a primitive wire encoding for instruction arguments and
// return values.
type Kind string

const (
	KindU8     Kind = "u8"
	KindU16    Kind = "u16"
	KindU32    Kind = "u32"
	KindU64    Kind = "u64"
	KindU128   Kind = "u128"
	KindI8     Kind = "i8"
	KindI16    Kind = "i16"
	KindI32    Kind = "i32"
	KindI64    Kind = "i64"
	KindI128   Kind = "i128"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindBytes  Kind = "bytes"
	KindPubkey Kind = "pubkey"

	// KindUnknown is the resolution result for composite or unrecognized
	// types. Callers apply the length-prefixed text fallback when encoding.
	KindUnknown Kind = "unknown"
)

// Kinds returns every primitive kind the codec can encode and decode, in a
// stable order.
func Kinds() []Kind {
	return []Kind{
		KindU8, KindU16, KindU32, KindU64, KindU128,
		KindI8, KindI16, KindI32, KindI64, KindI128,
		KindBool, KindPubkey, KindString, KindBytes,
	}
}

var intBits = map[Kind]int{
	KindU8: 8, KindU16: 16, KindU32: 32, KindU64: 64, KindU128: 128,
	KindI8: 8, KindI16: 16, KindI32: 32, KindI64: 64, KindI128: 128,
}

// IsInteger reports whether the kind is a fixed-width integer.
func (k Kind) IsInteger() bool {
	_, ok := intBits[k]
	return ok
}

// Bits returns the bit width of an integer kind, or 0 for non-integers.
func (k Kind) Bits() int {
	return intBits[k]
}

// Signed reports whether the kind is a signed integer.
func (k Kind) Signed() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindI128:
		return true
	default:
		return false
	}
}

// typeTag discriminates the TypeDescriptor variants.
type typeTag uint8

const (
	tagPrimitive typeTag = iota
	tagVector
	tagOption
	tagCompatOption
	tagArray
	tagDefined
)

// TypeDescriptor is the tagged variant over the type shapes an interface
// schema can declare for an argument: a primitive name, or a nested
// vec/option/coption/fixed-array/named-struct shape.
//
// Descriptors are immutable values; build them with the constructor
// functions below.
type TypeDescriptor struct {
	tag      typeTag
	name     string
	elem     *TypeDescriptor
	arrayLen int
}

// Primitive returns a descriptor for a named primitive type. Names that are
// not one of the known primitive kinds resolve to KindUnknown.
func Primitive(name string) TypeDescriptor {
	return TypeDescriptor{tag: tagPrimitive, name: name}
}

// Vector returns a descriptor for a variable-length sequence of elem.
func Vector(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{tag: tagVector, elem: &elem}
}

// Option returns a descriptor for an optional elem.
func Option(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{tag: tagOption, elem: &elem}
}

// CompatOption returns a descriptor for a C-style optional elem (the
// SPL-token "coption" shape).
func CompatOption(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{tag: tagCompatOption, elem: &elem}
}

// Array returns a descriptor for a fixed-length array of elem.
func Array(elem TypeDescriptor, length int) TypeDescriptor {
	return TypeDescriptor{tag: tagArray, elem: &elem, arrayLen: length}
}

// Defined returns a descriptor referencing a named struct or enum declared
// elsewhere in the schema.
func Defined(name string) TypeDescriptor {
	return TypeDescriptor{tag: tagDefined, name: name}
}

// Resolve maps the descriptor to its primitive encoding kind.
//
// Primitives resolve directly. Option and CompatOption resolve by recursing
// into the wrapped element. Vector, Array, and Defined have no defined
// primitive mapping and resolve to KindUnknown.
func (t TypeDescriptor) Resolve() Kind {
	switch t.tag {
	case tagPrimitive:
		k := Kind(t.name)
		if k.IsInteger() {
			return k
		}
		switch k {
		case KindBool, KindString, KindBytes, KindPubkey:
			return k
		default:
			return KindUnknown
		}
	case tagOption, tagCompatOption:
		return t.elem.Resolve()
	default:
		return KindUnknown
	}
}

// String renders the descriptor in the schema's textual form, for error
// messages and logs.
func (t TypeDescriptor) String() string {
	switch t.tag {
	case tagPrimitive, tagDefined:
		return t.name
	case tagVector:
		return fmt.Sprintf("vec<%s>", t.elem)
	case tagOption:
		return fmt.Sprintf("option<%s>", t.elem)
	case tagCompatOption:
		return fmt.Sprintf("coption<%s>", t.elem)
	case tagArray:
		return fmt.Sprintf("[%s; %d]", t.elem, t.arrayLen)
	default:
		return string(KindUnknown)
	}
}
