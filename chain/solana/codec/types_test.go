package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeDescriptorResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc TypeDescriptor
		want Kind
	}{
		{
			name: "primitive resolves directly",
			desc: Primitive("u64"),
			want: KindU64,
		},
		{
			name: "option recurses into element",
			desc: Option(Primitive("i32")),
			want: KindI32,
		},
		{
			name: "coption recurses into element",
			desc: CompatOption(Primitive("pubkey")),
			want: KindPubkey,
		},
		{
			name: "nested options recurse fully",
			desc: Option(CompatOption(Primitive("bool"))),
			want: KindBool,
		},
		{
			name: "vec has no primitive mapping",
			desc: Vector(Primitive("u8")),
			want: KindUnknown,
		},
		{
			name: "fixed array has no primitive mapping",
			desc: Array(Primitive("u8"), 32),
			want: KindUnknown,
		},
		{
			name: "defined struct has no primitive mapping",
			desc: Defined("MarketState"),
			want: KindUnknown,
		},
		{
			name: "option of vec is still unknown",
			desc: Option(Vector(Primitive("u8"))),
			want: KindUnknown,
		},
		{
			name: "unrecognized primitive name",
			desc: Primitive("f64"),
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.desc.Resolve())
		})
	}
}

func TestTypeDescriptorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u8", Primitive("u8").String())
	assert.Equal(t, "vec<u8>", Vector(Primitive("u8")).String())
	assert.Equal(t, "option<coption<u64>>", Option(CompatOption(Primitive("u64"))).String())
	assert.Equal(t, "[pubkey; 4]", Array(Primitive("pubkey"), 4).String())
	assert.Equal(t, "MarketState", Defined("MarketState").String())
}

func TestKindHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, KindU128.IsInteger())
	assert.True(t, KindI8.IsInteger())
	assert.False(t, KindBool.IsInteger())
	assert.False(t, KindPubkey.IsInteger())

	assert.Equal(t, 8, KindU8.Bits())
	assert.Equal(t, 128, KindI128.Bits())
	assert.Equal(t, 0, KindString.Bits())

	assert.True(t, KindI64.Signed())
	assert.False(t, KindU64.Signed())
	assert.False(t, KindBytes.Signed())

	assert.Len(t, Kinds(), 14)
}
