package codec

import "fmt"

// ParseError indicates a textual argument value is not a valid literal for
// its declared type.
type ParseError struct {
	Arg   string
	Value string
	Type  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("argument %q: %q is not a valid %s literal", e.Arg, e.Value, e.Type)
}

// RangeError indicates an integer argument value falls outside the bounds of
// its type's bit width.
type RangeError struct {
	Arg   string
	Value string
	Type  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("argument %q: value %s out of range for %s", e.Arg, e.Value, e.Type)
}

// InvalidBooleanError indicates a boolean argument value is not one of the
// accepted textual forms.
type InvalidBooleanError struct {
	Arg   string
	Value string
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("argument %q: %q is not a valid boolean (use true/false or 1/0)", e.Arg, e.Value)
}

// InvalidAccountIdentifierError indicates an account identifier argument is
// not a valid base58-encoded public key.
type InvalidAccountIdentifierError struct {
	Arg   string
	Value string
	Err   error
}

func (e *InvalidAccountIdentifierError) Error() string {
	return fmt.Sprintf("argument %q: invalid account identifier %q: %v", e.Arg, e.Value, e.Err)
}

func (e *InvalidAccountIdentifierError) Unwrap() error { return e.Err }

// BufferOverflowError indicates the encoded instruction would exceed the
// encoder's fixed buffer capacity. This is fatal to the encode call.
type BufferOverflowError struct {
	Arg      string
	Need     int
	Capacity int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("argument %q: encoded size %d exceeds buffer capacity %d", e.Arg, e.Need, e.Capacity)
}
