package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Run Tests
// =============================================================================

func TestPool_Run(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	pool.Run(100, func(int) { counter.Add(1) })

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestPool_RunIndexes(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	// Each task writes only its own slot, as batch callers do.
	out := make([]int, 50)
	pool.Run(len(out), func(i int) { out[i] = i * i })

	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	called := false
	pool.Run(0, func(int) { called = true })
	if called {
		t.Error("Run(0) should not call the task")
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
	var counter atomic.Int64
	pool.Run(10, func(int) { counter.Add(1) })
	if counter.Load() != 10 {
		t.Errorf("counter = %d, want 10 (inline after close)", counter.Load())
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestPool_WorkStealing(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Every slow task lands on worker 0; the others must steal the rest.
	var slow, fast atomic.Int64
	start := time.Now()
	pool.Run(40, func(i int) {
		if i%4 == 0 {
			time.Sleep(5 * time.Millisecond)
			slow.Add(1)
			return
		}
		fast.Add(1)
	})

	if slow.Load() != 10 || fast.Load() != 30 {
		t.Errorf("slow/fast = %d/%d, want 10/30", slow.Load(), fast.Load())
	}
	t.Logf("Elapsed time: %v", time.Since(start))
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		pool := NewPool(4)
		pool.Run(100, func(int) {})
		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}

func TestPool_ConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	done := make(chan struct{})
	for range 8 {
		go func() {
			pool.Run(25, func(int) { counter.Add(1) })
			done <- struct{}{}
		}()
	}
	for range 8 {
		<-done
	}
	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkPool_Run(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	for b.Loop() {
		pool.Run(256, func(int) {})
	}
}
