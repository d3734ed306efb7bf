package orders

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterIncrementAndAdd(t *testing.T) {
	c := NewCounter()
	require.EqualValues(t, 0, c.Total())

	require.EqualValues(t, 1, c.Increment())
	require.EqualValues(t, 6, c.Add(context.Background(), 5))
	require.EqualValues(t, 6, c.Total())
}

func TestCounterConcurrentIncrements(t *testing.T) {
	c := NewCounter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment()
		}()
	}
	wg.Wait()
	require.EqualValues(t, 50, c.Total())
}
