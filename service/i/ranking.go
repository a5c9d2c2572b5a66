package i

import (
	"context"
)

// SortedStore keeps, per key, a set of members ordered by ascending score.
type SortedStore interface {
	// KeepLowest stores score for member unless the member already holds a
	// lower one. It reports whether the stored score changed.
	KeepLowest(ctx context.Context, key string, score float64, member string) (bool, error)

	// Lowest returns up to amount members with the lowest scores, lowest
	// first, along with their scores.
	Lowest(ctx context.Context, key string, amount int64) ([]string, []float64, error)

	// Count returns the number of members stored under key.
	Count(ctx context.Context, key string) int64
}
