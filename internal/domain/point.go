package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Point represents one cell of the coworking grid (integer coordinates)
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Add returns the point translated by rhs
func (p Point) Add(rhs Point) Point {
	return Point{X: p.X + rhs.X, Y: p.Y + rhs.Y}
}

// Offsets is the footprint of an item type: displacements relative to its base point
// Stored in PostgreSQL as a jsonb array
type Offsets []Point

// Value implements driver.Valuer for jsonb storage
func (o Offsets) Value() (driver.Value, error) {
	if o == nil {
		o = Offsets{}
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("domain: marshal offsets: %w", err)
	}
	return data, nil
}

// Scan implements sql.Scanner for jsonb storage
func (o *Offsets) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*o = Offsets{}
		return nil
	default:
		return fmt.Errorf("domain: cannot scan offsets from %T", src)
	}
	return json.Unmarshal(data, o)
}
