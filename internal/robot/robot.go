package robot

import "fmt"

// Robot represents a robot on an unbounded 2D grid facing one of four bearings.
// The zero value faces north at the origin.
type Robot struct {
	bearing int
	x, y    int
}

func New() *Robot {
	return &Robot{}
}

// Place puts the robot at (x, y) facing direction. An invalid direction
// leaves the robot untouched.
func (r *Robot) Place(x, y int, direction Bearing) error {
	idx := direction.Index()
	if idx < 0 {
		return &InvalidInputError{Message: fmt.Sprintf("invalid direction %q", string(direction))}
	}
	r.x, r.y = x, y
	r.bearing = idx
	return nil
}

// Evaluate runs instructions left to right. It stops at the first
// character outside R, L, M; earlier steps stay applied.
func (r *Robot) Evaluate(instructions string) error {
	for i, c := range instructions {
		switch c {
		case 'R':
			r.bearing = (r.bearing + 1) % len(Bearings)
		case 'L':
			r.bearing = (r.bearing - 1 + len(Bearings)) % len(Bearings)
		case 'M':
			r.advance()
		default:
			return &InvalidInputError{Message: fmt.Sprintf("invalid instruction %q at offset %d", c, i)}
		}
	}
	return nil
}

func (r *Robot) advance() {
	switch Bearings[r.bearing] {
	case North:
		r.y++
	case East:
		r.x++
	case South:
		r.y--
	case West:
		r.x--
	}
}

func (r *Robot) Bearing() Bearing {
	return Bearings[r.bearing]
}

func (r *Robot) Coordinates() (int, int) {
	return r.x, r.y
}

func (r *Robot) String() string {
	return fmt.Sprintf("(%d,%d) %s", r.x, r.y, r.Bearing())
}
