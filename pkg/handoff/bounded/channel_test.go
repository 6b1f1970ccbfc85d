package bounded

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/handoff/pkg/handoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NegativeCapacity(t *testing.T) {
	t.Parallel()

	ch, err := New[int](-1)
	require.ErrorIs(t, err, handoff.ErrNegativeCapacity)
	assert.Nil(t, ch)
}

func TestPutGet_FIFO(t *testing.T) {
	t.Parallel()

	ch, err := New[int](5)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, ch.Put(i))
	}
	assert.Equal(t, 5, ch.Len())

	for i := 1; i <= 5; i++ {
		v, err := ch.Get()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, ch.Len())
}

func TestPut_UnboundedNeverBlocks(t *testing.T) {
	t.Parallel()

	ch, err := New[int](0)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 10_000 {
			_ = ch.Put(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("put on unbounded channel blocked")
	}
	assert.Equal(t, 10_000, ch.Len())
	assert.Zero(t, ch.Stats().PutWaits)
}

func TestPut_BlocksWhenFull(t *testing.T) {
	t.Parallel()

	ch, err := New[int](3)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, ch.Put(i))
	}

	var completed atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = ch.Put(4)
		completed.Store(true)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, completed.Load(), "fourth put must wait for a get")

	v, err := ch.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("put was not woken by get")
	}
	assert.True(t, completed.Load())
	assert.Equal(t, int64(1), ch.Stats().PutWaits)
}

func TestGet_BlocksWhenEmpty(t *testing.T) {
	t.Parallel()

	ch, err := New[string](1)
	require.NoError(t, err)

	got := make(chan string, 1)
	go func() {
		v, _ := ch.Get()
		got <- v
	}()

	select {
	case <-got:
		t.Fatal("get returned on an empty channel")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, ch.Put("x"))

	select {
	case v := <-got:
		assert.Equal(t, "x", v)
	case <-time.After(time.Second):
		t.Fatal("get was not woken by put")
	}
	assert.Equal(t, int64(1), ch.Stats().GetWaits)
}

func TestBoundedness_SlowConsumer(t *testing.T) {
	t.Parallel()

	const capacity = 3
	var overflow atomic.Int32

	ch, err := New[int](capacity, WithHooks(Hooks{
		OnPut: func(depth int) {
			if depth > capacity {
				overflow.Add(1)
			}
		},
	}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 50 {
			_ = ch.Put(i)
		}
	}()

	got := make([]int, 0, 50)
	go func() {
		defer wg.Done()
		for range 50 {
			v, _ := ch.Get()
			got = append(got, v)
			time.Sleep(time.Millisecond)
		}
	}()
	wg.Wait()

	assert.Zero(t, overflow.Load())
	assert.LessOrEqual(t, ch.Stats().MaxDepth, capacity)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestStressOrdering(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, 1, 2, 7} {
		ch, err := New[int](capacity)
		require.NoError(t, err)

		const n = 20_000
		go func() {
			for i := range n {
				_ = ch.Put(i)
			}
		}()

		for i := range n {
			v, err := ch.Get()
			require.NoError(t, err)
			if v != i {
				t.Fatalf("capacity %d: position %d got %d", capacity, i, v)
			}
		}

		st := ch.Stats()
		assert.Equal(t, int64(n), st.Puts)
		assert.Equal(t, int64(n), st.Gets)
	}
}

func TestClaim_SecondRoleRejected(t *testing.T) {
	t.Parallel()

	ch, err := New[int](1)
	require.NoError(t, err)

	require.NoError(t, ch.ClaimProducer())
	assert.ErrorIs(t, ch.ClaimProducer(), handoff.ErrProducerAttached)

	require.NoError(t, ch.ClaimConsumer())
	assert.ErrorIs(t, ch.ClaimConsumer(), handoff.ErrConsumerAttached)
}

func TestPut_ConcurrentPutFailsFast(t *testing.T) {
	t.Parallel()

	ch, err := New[int](1)
	require.NoError(t, err)
	require.NoError(t, ch.Put(1))

	blocked := make(chan error, 1)
	go func() { blocked <- ch.Put(2) }()

	require.Eventually(t, func() bool { return ch.Stats().PutWaits == 1 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, ch.Put(3), handoff.ErrConcurrentPut)

	_, err = ch.Get()
	require.NoError(t, err)
	assert.NoError(t, <-blocked)
}

func TestGet_ConcurrentGetFailsFast(t *testing.T) {
	t.Parallel()

	ch, err := New[int](1)
	require.NoError(t, err)

	blocked := make(chan error, 1)
	go func() {
		_, err := ch.Get()
		blocked <- err
	}()

	require.Eventually(t, func() bool { return ch.Stats().GetWaits == 1 }, time.Second, 5*time.Millisecond)
	_, err = ch.Get()
	assert.ErrorIs(t, err, handoff.ErrConcurrentGet)

	require.NoError(t, ch.Put(1))
	assert.NoError(t, <-blocked)
}

func TestAbort_ReleasesBlockedGet(t *testing.T) {
	t.Parallel()

	ch, err := New[int](2)
	require.NoError(t, err)

	cause := errors.New("producer crashed")
	released := make(chan error, 1)
	go func() {
		_, err := ch.Get()
		released <- err
	}()

	require.Eventually(t, func() bool { return ch.Stats().GetWaits == 1 }, time.Second, 5*time.Millisecond)
	ch.Abort(cause)

	select {
	case err := <-released:
		assert.ErrorIs(t, err, handoff.ErrAborted)
		assert.ErrorIs(t, err, cause)
	case <-time.After(time.Second):
		t.Fatal("abort did not release get")
	}

	assert.ErrorIs(t, ch.Put(1), handoff.ErrAborted)
}

func TestAbort_ReleasesBlockedPut(t *testing.T) {
	t.Parallel()

	ch, err := New[int](1)
	require.NoError(t, err)
	require.NoError(t, ch.Put(1))

	released := make(chan error, 1)
	go func() { released <- ch.Put(2) }()

	require.Eventually(t, func() bool { return ch.Stats().PutWaits == 1 }, time.Second, 5*time.Millisecond)
	ch.Abort(nil)
	ch.Abort(errors.New("ignored"))

	err = <-released
	assert.ErrorIs(t, err, handoff.ErrAborted)
	assert.NotContains(t, err.Error(), "ignored")
}

func TestHooks_FullAndEmpty(t *testing.T) {
	t.Parallel()

	var fulls, empties atomic.Int32
	ch, err := New[int](1, WithHooks(Hooks{
		OnFull:  func(int) { fulls.Add(1) },
		OnEmpty: func() { empties.Add(1) },
	}))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 2 {
			_, _ = ch.Get()
		}
	}()

	require.Eventually(t, func() bool { return empties.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, ch.Put(1))
	require.NoError(t, ch.Put(2))
	<-done

	assert.LessOrEqual(t, fulls.Load(), int32(1))
	assert.Equal(t, 1, ch.Cap())
}
