package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowContainerSet(t *testing.T) {
	c := &windowContainer{}
	assert.True(t, c.set(640, 480))
	assert.False(t, c.set(640, 480))
	w, h := c.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestEnvReducedMotion(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "true": true, "0": false, "": false, "yes please": false} {
		t.Setenv("PREFERS_REDUCED_MOTION", value)
		assert.Equal(t, want, envReducedMotion(), value)
	}
}
