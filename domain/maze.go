// Package dmn holds the records the services persist and exchange.
package dmn

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrMazeNotFound is returned by repositories for unknown maze IDs.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord is a stored maze. Data holds the maze in its binary file
// format.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	Name      string    `bson:"name"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Data      []byte    `bson:"data"`
	CreatedAt time.Time `bson:"createdAt"`
}

// Ranking is the best time an algorithm achieved on one maze.
type Ranking struct {
	Algorithm string
	Elapsed   time.Duration
}
