package scrollscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {

	reg := NewRegistry()
	office := newFakeGroup("office")
	chair := newFakeGroup("chair")

	require.NoError(t, reg.Register("office", office))
	require.NoError(t, reg.Register("chair", chair))

	got, err := reg.Lookup("office")
	require.NoError(t, err)
	assert.Same(t, office, got)

	assert.Equal(t, []string{"office", "chair"}, reg.Names())
	assert.Equal(t, 2, reg.Len())

	err = reg.Register("office", newFakeGroup("office"))
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	got, err = reg.Lookup("office")
	require.NoError(t, err)
	assert.Same(t, office, got, "a failed registration doesn't replace the entry")

}

func TestRegistryLookupMissing(t *testing.T) {

	_, err := NewRegistry().Lookup("office")
	assert.ErrorIs(t, err, ErrNotFound)

	var reg *Registry
	_, err = reg.Lookup("office")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Names())

}
