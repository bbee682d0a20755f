package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
	fired  chan string
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan string, 16)}
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
	r.fired <- v
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerDeliversLastValue(t *testing.T) {
	rec := newRecorder()
	d := New(30*time.Millisecond, rec.record)
	defer d.Stop()

	d.Push("h")
	d.Push("ht")
	d.Push("htt")

	select {
	case v := <-rec.fired:
		assert.Equal(t, "htt", v)
	case <-time.After(time.Second):
		t.Fatal("debounced value was never delivered")
	}

	// nothing else should trickle in
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"htt"}, rec.snapshot())
}

func TestDebouncerSupersededValueNeverDelivered(t *testing.T) {
	const delay = 100 * time.Millisecond

	rec := newRecorder()
	d := New(delay, rec.record)
	defer d.Stop()

	d.Push("first")
	time.Sleep(delay * 3 / 10)
	d.Push("second")

	select {
	case v := <-rec.fired:
		assert.Equal(t, "second", v)
	case <-time.After(time.Second):
		t.Fatal("debounced value was never delivered")
	}

	time.Sleep(2 * delay)
	assert.Equal(t, []string{"second"}, rec.snapshot())
}

func TestDebouncerRestartsTimerOnPush(t *testing.T) {
	const delay = 60 * time.Millisecond

	rec := newRecorder()
	d := New(delay, rec.record)
	defer d.Stop()

	start := time.Now()
	d.Push("a")
	time.Sleep(delay / 2)
	d.Push("b")

	select {
	case <-rec.fired:
	case <-time.After(time.Second):
		t.Fatal("debounced value was never delivered")
	}

	assert.GreaterOrEqual(t, time.Since(start), delay+delay/2)
}

func TestDebouncerStop(t *testing.T) {
	rec := newRecorder()
	d := New(20*time.Millisecond, rec.record)

	d.Push("pending")
	require.True(t, d.Pending())

	d.Stop()
	assert.False(t, d.Pending())

	d.Push("after stop")
	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, rec.snapshot(), "no value may be delivered after Stop")
}

func TestDebouncerStopWaitsForRunningCallback(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished bool

	d := New(time.Millisecond, func(string) {
		close(entered)
		<-release
		finished = true
	})

	d.Push("x")
	<-entered

	stopped := make(chan struct{})
	go func() {
		d.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while callback was still running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	<-stopped
	assert.True(t, finished)
}

func TestDebouncerFlush(t *testing.T) {
	rec := newRecorder()
	d := New(time.Hour, rec.record)
	defer d.Stop()

	d.Flush()
	assert.Empty(t, rec.snapshot(), "flush with nothing pending is a no-op")

	d.Push("now")
	d.Flush()

	assert.Equal(t, []string{"now"}, rec.snapshot())
	assert.False(t, d.Pending())

	d.Flush()
	assert.Equal(t, []string{"now"}, rec.snapshot(), "a value is delivered once")
}

func TestDebouncerOneDeliveryPerBurst(t *testing.T) {
	rec := newRecorder()
	d := New(25*time.Millisecond, rec.record)
	defer d.Stop()

	d.Push("one")
	<-rec.fired

	d.Push("two")
	d.Push("three")
	<-rec.fired

	assert.Equal(t, []string{"one", "three"}, rec.snapshot())
}
