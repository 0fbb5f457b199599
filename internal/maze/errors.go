package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidAdjacency is returned when a wall removal is requested between
// cells that do not share an edge. It indicates a caller bug.
var ErrInvalidAdjacency = errors.New("maze: cells are not adjacent")

// MaxDimension caps either grid side. Larger boards cannot be drawn on any
// terminal and their cell slice grows quadratically.
const MaxDimension = 1000

// ConfigError reports an invalid grid configuration value.
// It is fatal at initialization. Max is zero when the field has no upper bound.
type ConfigError struct {
	Field string
	Value int
	Max   int
}

func (e *ConfigError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("maze: invalid %s %d (must be between 1 and %d)", e.Field, e.Value, e.Max)
	}
	return fmt.Sprintf("maze: invalid %s %d (must be >= 1)", e.Field, e.Value)
}

// ValidateSize checks grid dimensions and returns a *ConfigError for the
// first invalid one.
func ValidateSize(columns, rows int) error {
	if columns < 1 || columns > MaxDimension {
		return &ConfigError{Field: "columns", Value: columns, Max: MaxDimension}
	}
	if rows < 1 || rows > MaxDimension {
		return &ConfigError{Field: "rows", Value: rows, Max: MaxDimension}
	}
	return nil
}
