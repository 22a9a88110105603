package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes_Units(t *testing.T) {
	assert.Equal(t, Bytes(1024), KiByte)
	assert.Equal(t, Bytes(1024*1024), MiByte)
	assert.Equal(t, Bytes(1024*1024*1024), GiByte)
}

func TestBytes_CeilTo(t *testing.T) {
	assert.Equal(t, Bytes(0), Bytes(0).CeilTo(4096))
	assert.Equal(t, Bytes(4096), Bytes(1).CeilTo(4096))
	assert.Equal(t, Bytes(4096), Bytes(4096).CeilTo(4096))
	assert.Equal(t, Bytes(8192), Bytes(4097).CeilTo(4096))

	// Non-power-of-two units are allowed.
	assert.Equal(t, Bytes(3000), Bytes(2001).CeilTo(1000))
}

func TestBytes_FloorTo(t *testing.T) {
	assert.Equal(t, Bytes(0), Bytes(4095).FloorTo(4096))
	assert.Equal(t, Bytes(4096), Bytes(4096).FloorTo(4096))
	assert.Equal(t, Bytes(4096), Bytes(8191).FloorTo(4096))
}

func TestBytes_IsMultipleOf(t *testing.T) {
	assert.True(t, Bytes(8192).IsMultipleOf(4096))
	assert.False(t, Bytes(8191).IsMultipleOf(4096))
	assert.False(t, Bytes(8192).IsMultipleOf(0), "zero unit is never a divisor")
}

func TestSizeOfPointer(t *testing.T) {
	// 8 on 64-bit platforms, 4 on 32-bit ones.
	assert.Contains(t, []Bytes{4, 8}, SizeOfPointer)
}
