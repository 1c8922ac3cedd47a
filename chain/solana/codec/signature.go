package codec

// ArgSpec describes one argument of a program method: its declared name and
// schema type.
type ArgSpec struct {
	Name string
	Type TypeDescriptor
}

// AccountSpec describes one account a program method touches. The codec only
// echoes the flags; account roles are interpreted by the transaction builder.
type AccountSpec struct {
	Name     string
	Signer   bool
	Writable bool
	Optional bool
}

// MethodSignature is the callable surface of one program method, fetched from
// the program's published interface schema. It is immutable for the duration
// of an encode call.
type MethodSignature struct {
	Name     string
	Args     []ArgSpec
	Accounts []AccountSpec
}
