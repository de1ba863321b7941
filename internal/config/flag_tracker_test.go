package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagTrackerSetAndWasSet(t *testing.T) {
	ft := NewFlagTracker()
	assert.False(t, ft.WasSet("format"))

	ft.Set("format")
	assert.True(t, ft.WasSet("format"))
	assert.False(t, ft.WasSet("color"))
}

func TestFlagTrackerMergeString(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("format")
	assert.Equal(t, "json", ft.MergeString("dot", "json", "format"))
	assert.Equal(t, "dot", ft.MergeString("dot", "json", "color"))
}

func TestFlagTrackerMergeIntAndBool(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("disasm-timeout")
	ft.Set("progress")

	assert.Equal(t, 120, ft.MergeInt(60, 120, "disasm-timeout"))
	assert.Equal(t, 60, ft.MergeInt(60, 120, "other"))

	assert.Equal(t, false, ft.MergeBool(true, false, "progress"))
	assert.Equal(t, true, ft.MergeBool(true, false, "unset-flag"))
}

func TestFlagTrackerConcurrentSet(t *testing.T) {
	ft := NewFlagTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ft.Set("flag")
		}(i)
	}
	wg.Wait()
	assert.True(t, ft.WasSet("flag"))
}
