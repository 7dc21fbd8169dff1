package concurrent

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func valueSupplier(value int) Supplier[int] {
	return SupplierFunc[int](func(ctx context.Context) (int, error) {
		return value, nil
	})
}

func TestBatchRunOKNoConcurrency(t *testing.T) {
	inC := make(chan Supplier[int])

	go func() {
		for i := 0; i < 10; i++ {
			inC <- valueSupplier(i)
		}
		close(inC)
	}()

	resC := BatchWithOpts(context.TODO(), inC, BatchOpts{
		Concurrency: 1,
	})

	counter := 0
	for res := range resC {
		assert.Equal(t, counter, res.Value())
		assert.Equal(t, int64(counter), res.Index())
		assert.Nil(t, res.Err())
		counter++
	}
	assert.Equal(t, 10, counter)
}

func TestBatchRunErrTimeout(t *testing.T) {
	inC := make(chan Supplier[int])
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	resC := BatchWithOpts(ctx, inC, BatchOpts{
		Concurrency: 1,
	})

	counter := 0
	for range resC {
		counter++
	}

	assert.Equal(t, 0, counter)
}

func TestBatchRunErrCancel(t *testing.T) {
	inC := make(chan Supplier[int], 64)
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	inC <- SupplierFunc[int](func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})
	for i := 1; i < 10; i++ {
		inC <- valueSupplier(i)
	}
	close(inC)

	resC := BatchWithOpts(ctx, inC, BatchOpts{
		Concurrency: 1,
	})

	<-started
	cancel()

	counter := 0
	for range resC {
		counter++
	}

	assert.True(t, counter < 10)
}

func TestBatchRunOKWithConcurrency(t *testing.T) {
	inC := make(chan Supplier[int])

	go func() {
		for i := 0; i < 10; i++ {
			inC <- valueSupplier(i)
		}
		close(inC)
	}()

	resC := BatchWithOpts(context.TODO(), inC, BatchOpts{
		Concurrency: 8,
	})

	var results []int
	for res := range resC {
		assert.Nil(t, res.Err())
		results = append(results, res.Value())
	}

	sort.Ints(results)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, results)
}

func TestBatchRunnerReuse(t *testing.T) {
	runner := NewBatchRunnerWithOpts[int](BatchOpts{Concurrency: 2})

	for round := 0; round < 3; round++ {
		inC := make(chan Supplier[int], 1)
		inC <- valueSupplier(round)
		close(inC)

		var values []int
		for res := range runner.Run(context.TODO(), inC) {
			values = append(values, res.Value())
		}
		assert.Equal(t, []int{round}, values)
	}
}

func TestBatchRunnerAlreadyRunningPanics(t *testing.T) {
	runner := NewBatchRunner[int]()
	inC := make(chan Supplier[int])
	outC := runner.Run(context.TODO(), inC)

	assert.Panics(t, func() {
		runner.Run(context.TODO(), inC)
	})

	close(inC)
	for range outC {
	}
}

func TestBatchSliceOK(t *testing.T) {
	in := make([]Supplier[int], 0, 10)

	for i := 0; i < 10; i++ {
		value := i
		in = append(in, SupplierFunc[int](func(ctx context.Context) (int, error) {
			time.Sleep(time.Duration(10-value) * time.Millisecond)
			return value, nil
		}))
	}

	res := BatchSliceWithOpts(context.TODO(), in, BatchOpts{Concurrency: 8})

	assert.Equal(t, len(in), len(res))
	for i := 0; i < len(res); i++ {
		assert.Equal(t, i, res[i].Value())
		assert.Equal(t, int64(i), res[i].Index())
		assert.Nil(t, res[i].Err())
	}
}

func TestBatchSliceErrors(t *testing.T) {
	failure := errors.New("failure")
	in := []Supplier[string]{
		SupplierFunc[string](func(ctx context.Context) (string, error) {
			return "ok", nil
		}),
		SupplierFunc[string](func(ctx context.Context) (string, error) {
			return "", failure
		}),
		SupplierFunc[string](func(ctx context.Context) (string, error) {
			panic("unreachable statement")
		}),
		SupplierFunc[string](func(ctx context.Context) (string, error) {
			panic(failure)
		}),
	}

	res := BatchSlice(context.TODO(), in)

	assert.Equal(t, 4, len(res))
	assert.Equal(t, "ok", res[0].Value())
	assert.Nil(t, res[0].Err())
	assert.Equal(t, failure, res[1].Err())

	var errPanic ErrPanic
	if assert.True(t, errors.As(res[2].Err(), &errPanic)) {
		assert.Equal(t, "unreachable statement", errPanic.Value)
		assert.NotEmpty(t, errPanic.Stack)
		assert.Equal(t, "panic error unreachable statement", errPanic.Error())
	}
	assert.True(t, errors.Is(res[3].Err(), failure))
}

func TestBatchSliceCancelledReportsNotRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []Supplier[int]{valueSupplier(1), valueSupplier(2)}
	res := BatchSliceWithOpts(ctx, in, BatchOpts{Concurrency: 1})

	assert.Equal(t, 2, len(res))
	for i, r := range res {
		// a result may still be produced if a worker won the race
		// against the cancellation
		if r.Err() == nil {
			continue
		}

		var notRun ErrNotRun
		assert.True(t, errors.As(r.Err(), &notRun))
		assert.True(t, errors.Is(r.Err(), context.Canceled))
		assert.Equal(t, int64(i), r.Index())
	}
}

func runBatchBenchmark(b *testing.B, s Supplier[int]) {
	inC := make(chan Supplier[int], 64)
	runner := NewBatchRunnerWithOpts[int](BatchOpts{
		Concurrency: 8,
	})
	ctx := context.TODO()
	outC := runner.Run(ctx, inC)

	go func(inC chan<- Supplier[int]) {
		for i := 0; i < b.N; i++ {
			inC <- s
		}
		close(inC)
	}(inC)

	counter := 0
	for range outC {
		counter++
	}

	assert.Equal(b, b.N, counter)
}

func BenchmarkBatchRunner(b *testing.B) {
	runBatchBenchmark(b, valueSupplier(0))
}

func BenchmarkBatchRunnerWithConstantWait(b *testing.B) {
	s := SupplierFunc[int](func(ctx context.Context) (int, error) {
		<-time.After(1 * time.Microsecond)
		return 0, nil
	})

	runBatchBenchmark(b, s)
}
