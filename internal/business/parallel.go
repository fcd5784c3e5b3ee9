package business

import (
	"github.com/alitto/pond"
	"github.com/samber/lo"

	"github.com/Agurato/filmstats/internal/model"
)

// Datasets smaller than this are summed sequentially
const parallelThreshold = 4096

// parallelSum sums fn over films, splitting the slice in chunks handled by a worker pool
func parallelSum(films []model.Film, workers int, fn func(model.Film) int) int {
	if workers <= 1 || len(films) < parallelThreshold {
		return lo.SumBy(films, fn)
	}

	chunkSize := (len(films) + workers - 1) / workers
	chunks := lo.Chunk(films, chunkSize)
	partials := make([]int, len(chunks))

	pool := pond.New(workers, len(chunks))
	for i, chunk := range chunks {
		i, chunk := i, chunk
		pool.Submit(func() {
			partials[i] = lo.SumBy(chunk, fn)
		})
	}
	pool.StopAndWait()

	return lo.Sum(partials)
}
