// Package overlap evaluates every pair in a list of CIDR blocks.
package overlap

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ipinspect/internal/ipcalc"
)

// Pair is an overlapping pair of entries, identified by their position in
// the input slice. Left is always the smaller index.
type Pair struct {
	Left     int
	Right    int
	Relation ipcalc.Relation
}

// Matrix compares every pair of prefixes and returns the overlapping ones
// ordered by (Left, Right). Rows are evaluated concurrently with at most
// workers goroutines; workers <= 0 means runtime.NumCPU().
func Matrix(ctx context.Context, prefixes []ipcalc.Prefix, workers int) ([]Pair, error) {
	if len(prefixes) < 2 {
		return nil, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make([][]Pair, len(prefixes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range prefixes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			for j := i + 1; j < len(prefixes); j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				rel := ipcalc.RelationOf(prefixes[i], prefixes[j])
				if rel.Overlapping() {
					rows[i] = append(rows[i], Pair{Left: i, Right: j, Relation: rel})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, row := range rows {
		pairs = append(pairs, row...)
	}
	return pairs, nil
}
