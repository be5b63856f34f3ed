package depthfirst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/depthfirst"
)

func TestDepthFirstLIFOOrder(t *testing.T) {
	f := depthfirst.New()
	f.Push(core.FrontierState{Value: 1})
	f.Push(core.FrontierState{Value: 2})
	f.Push(core.FrontierState{Value: 3})

	require.Equal(t, 3, f.Len())
	for _, want := range []int{3, 2, 1} {
		got, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got.Value)
	}
	_, ok := f.Pop()
	assert.False(t, ok)
}
