package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAll(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{1, 2, 3, 4, 5}},
		{name: "more workers than jobs", numWorkers: 16, jobs: []int{3, 1, 2}},
		{name: "zero workers fall back to one", numWorkers: 0, jobs: []int{7, 8}},
		{name: "no jobs", numWorkers: 4, jobs: nil},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := RunAll[int, int](tt.numWorkers, tt.jobs, func(job int) int { return job * job })

			expected := make([]int, 0, len(tt.jobs))
			for _, job := range tt.jobs {
				expected = append(expected, job*job)
			}
			sort.Ints(got)
			sort.Ints(expected)
			assert.Equal(t, expected, got)
		})
	}
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[string, int](3, 4)
	assert.Equal(t, 3, wp.NumWorkers())

	for _, s := range []string{"a", "bb", "ccc", "dddd"} {
		wp.AddJob(s)
	}
	wp.Close()
	wp.Start(func(s string) int { return len(s) })
	wp.Wait()

	total := 0
	for n := range wp.CollectResults() {
		total += n
	}
	assert.Equal(t, 10, total)
}
