package bestfirst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NATHANIELCROSBY1/webppl/bestfirst"
	"github.com/NATHANIELCROSBY1/webppl/core"
)

func TestBestFirstOrdersByScoreDescending(t *testing.T) {
	f := bestfirst.New()
	f.Push(core.FrontierState{Value: "low", Score: -5})
	f.Push(core.FrontierState{Value: "high", Score: 2})
	f.Push(core.FrontierState{Value: "mid", Score: -1})

	require.Equal(t, 3, f.Len())

	first, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "high", first.Value)

	second, _ := f.Pop()
	assert.Equal(t, "mid", second.Value)

	third, _ := f.Pop()
	assert.Equal(t, "low", third.Value)

	_, ok = f.Pop()
	assert.False(t, ok)
}

func TestBestFirstEmpty(t *testing.T) {
	f := bestfirst.New()
	assert.Equal(t, 0, f.Len())
	_, ok := f.Pop()
	assert.False(t, ok)
}
