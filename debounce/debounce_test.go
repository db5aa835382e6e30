package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerRunsLastCallbackOnce(t *testing.T) {
	d := New(20 * time.Millisecond)
	var got atomic.Int32
	for i := 1; i <= 5; i++ {
		d.Trigger(func() { got.Store(int32(i)) })
	}
	assert.True(t, d.IsActive())

	require.Eventually(t, func() bool { return d.Fired() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), got.Load())
	assert.False(t, d.IsActive())
}

func TestCancel(t *testing.T) {
	d := New(10 * time.Millisecond)
	var ran atomic.Bool
	d.Trigger(func() { ran.Store(true) })
	d.Cancel()
	assert.False(t, d.IsActive())

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
	assert.Equal(t, 0, d.Fired())
}

func TestStaleTimerDoesNotRunNewCallback(t *testing.T) {
	d := New(time.Hour)
	defer d.Cancel()

	d.Trigger(func() {})
	d.mutex.Lock()
	stale := d.gen
	d.mutex.Unlock()

	var ran atomic.Bool
	d.Trigger(func() { ran.Store(true) })

	// A timer from the first trigger that fired before Stop must not run the new callback early.
	d.fire(stale)
	assert.False(t, ran.Load())
	assert.True(t, d.IsActive())
	assert.Equal(t, 0, d.Fired())

	d.mutex.Lock()
	current := d.gen
	d.mutex.Unlock()
	d.fire(current)
	assert.True(t, ran.Load())
	assert.Equal(t, 1, d.Fired())
}
