package scrollscene

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureResolvesOnce(t *testing.T) {

	f := newFuture[int]()
	assert.False(t, f.Ready())

	f.resolve(1, nil)
	f.resolve(2, errFetch)

	assert.True(t, f.Ready())
	v, err := f.Result()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

}

func TestFutureWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newFuture[int]().Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllWaitsForEveryFuture(t *testing.T) {

	a, b, c := newFuture[string](), newFuture[string](), newFuture[string]()
	all := All(a, b, c)

	c.resolve("c", nil)
	a.resolve("", errFetch)
	assert.Never(t, all.Ready, 50*time.Millisecond, 5*time.Millisecond)

	b.resolve("b", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	values, err := all.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFetch)
	assert.Equal(t, []string{"", "b", "c"}, values)

}

func TestAllEmpty(t *testing.T) {
	values, err := All[int]().Result()
	assert.NoError(t, err)
	assert.Empty(t, values)
}
