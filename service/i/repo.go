package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-solver/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze. An existing record with the same ID is
	// replaced.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze by its ID.
	// Returns an error if the maze is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
