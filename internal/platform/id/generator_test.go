package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	first, err := gen.NewID()
	require.NoError(t, err)
	second, err := gen.NewID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	_, err = uuid.Parse(first)
	assert.NoError(t, err)
}

func TestSequenceGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := &SequenceGenerator{Prefix: "susp-"}
	a, _ := gen.NewID()
	b, _ := gen.NewID()
	assert.Equal(t, "susp-1", a)
	assert.Equal(t, "susp-2", b)
}
