package lens

import "sync"

// task runs fn on every element of data, split in contiguous chunks across
// workersCount goroutines, and returns once all of them are done.
// A single worker runs on the calling goroutine.
func task[T any](workersCount int, data []T, fn func(item T)) {
	dataSize := len(data)
	if workersCount <= 1 || dataSize < 2 {
		for _, item := range data {
			fn(item)
		}
		return
	}

	workersCount = min(workersCount, dataSize)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for start := 0; start < dataSize; start += chunkSize {
		wg.Add(1)
		go func(chunk []T) {
			defer wg.Done()
			for _, item := range chunk {
				fn(item)
			}
		}(data[start:min(start+chunkSize, dataSize)])
	}
	wg.Wait()
}
