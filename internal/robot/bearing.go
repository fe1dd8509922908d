package robot

import (
	"fmt"
	"strings"
)

// Bearing is the direction a robot faces.
type Bearing string

const (
	North Bearing = "N"
	East  Bearing = "E"
	South Bearing = "S"
	West  Bearing = "W"
)

// Bearings is the clockwise order used for rotation.
var Bearings = [4]Bearing{North, East, South, West}

// Index returns the position of b in Bearings, or -1.
func (b Bearing) Index() int {
	for i, v := range Bearings {
		if v == b {
			return i
		}
	}
	return -1
}

func (b Bearing) Valid() bool {
	return b.Index() >= 0
}

// ParseBearing accepts N, E, S or W. Surrounding whitespace is ignored,
// case is not.
func ParseBearing(s string) (Bearing, error) {
	b := Bearing(strings.TrimSpace(s))
	if !b.Valid() {
		return "", &InvalidInputError{Message: fmt.Sprintf("invalid direction %q", s)}
	}
	return b, nil
}
