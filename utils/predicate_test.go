package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 65535))
	assert.True(t, IsInRange(1, 65535, 65535))
	assert.False(t, IsInRange(1, 65536, 65535))
	assert.False(t, IsInRange(1, 0, 65535))
	assert.True(t, IsInRange("a", "b", "c"))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(1))
	assert.True(t, IsPositive(uint8(3)))
	assert.False(t, IsPositive(0))
	assert.False(t, IsPositive(-0.5))
}
