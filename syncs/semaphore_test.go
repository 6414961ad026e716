package syncs

import (
	"sync"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)

	var mu sync.Mutex
	inFlight := 0
	peak := 0

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Acquire()
			defer sem.Release()

			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if peak > 2 {
		t.Fatalf("peak %d", peak)
	}
}
