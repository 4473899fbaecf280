package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rowVersionType = "TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"

func TestBinaryPolicy_RowVersionWins(t *testing.T) {
	p := Default.BinaryPolicy()

	for _, keyOrIndex := range []bool{false, true} {
		for _, size := range []*int{nil, limit(100), limit(-5)} {
			m, err := p.Resolve(true, keyOrIndex, size)
			require.NoError(t, err)
			assert.Equal(t, rowVersionType, m.StoreType())
		}
	}
}

func TestBinaryPolicy_Defaults(t *testing.T) {
	p := Default.BinaryPolicy()

	key, err := p.Resolve(false, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "varbinary(767)", key.StoreType())

	plain, err := p.Resolve(false, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "longblob", plain.StoreType())

	assert.Equal(t, "varbinary(767)", p.Default().StoreType())
	assert.Equal(t, DefaultInlineSizeCeiling, p.Ceiling())
}

func TestBinaryPolicy_DeclaredSize(t *testing.T) {
	p := Default.BinaryPolicy()

	for _, keyOrIndex := range []bool{false, true} {
		m, err := p.Resolve(false, keyOrIndex, limit(100))
		require.NoError(t, err)

		assert.Equal(t, "varbinary(100)", m.StoreType())
		size, ok := m.Size()
		assert.True(t, ok)
		assert.Equal(t, 100, size)
		assert.True(t, m.HasNonDefaultSize())
		assert.False(t, m.IsUnicode())
	}

	// the ceiling does not cap an explicit size
	m, err := p.Resolve(false, false, limit(20000))
	require.NoError(t, err)
	assert.Equal(t, "varbinary(20000)", m.StoreType())
}

func TestBinaryPolicy_RejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		m, err := Default.BinaryPolicy().Resolve(false, false, limit(n))
		assert.Nil(t, m)
		require.ErrorIs(t, err, ErrInvalidConstraint)
		assert.Contains(t, err.Error(), "binary")
	}
}

func TestBinaryPolicy_CustomParts(t *testing.T) {
	unbounded := NewMapping("blob", DbTypeBinary)
	def := NewMapping("varbinary(16)", DbTypeBinary, WithSize(16))
	key := NewMapping("varbinary(32)", DbTypeBinary, WithSize(32))
	rv := NewMapping("rv", DbTypeBinary)

	p := NewBinaryPolicy(100, unbounded, def, key, rv, varbinary)

	m, err := p.Resolve(false, true, nil)
	require.NoError(t, err)
	assert.Same(t, key, m)

	m, err = p.Resolve(false, false, nil)
	require.NoError(t, err)
	assert.Same(t, unbounded, m)
	assert.Same(t, def, p.Default())
	assert.Equal(t, 100, p.Ceiling())
}
