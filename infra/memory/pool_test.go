package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetPut(t *testing.T) {
	type order struct{ qty int64 }

	pool := NewPool(func() *order { return &order{} })

	o := pool.Get()
	require.NotNil(t, o)
	o.qty = 7
	pool.Put(o)

	// Whether or not the same struct comes back, Get always yields a
	// usable object.
	assert.NotNil(t, pool.Get())
}
