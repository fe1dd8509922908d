package interpreter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"robotsim/internal/robot"
)

var ErrUnknownRobot = errors.New("unknown robot")

// Fleet holds named robots

type Fleet struct {
	robots map[string]*robot.Robot
}

func NewFleet() *Fleet {
	return &Fleet{robots: make(map[string]*robot.Robot)}
}

func (f *Fleet) Get(name string) (*robot.Robot, error) {
	r, ok := f.robots[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRobot, name)
	}
	return r, nil
}

// GetOrCreate returns the robot called name, creating a default one first if needed.
func (f *Fleet) GetOrCreate(name string) *robot.Robot {
	r, ok := f.robots[name]
	if !ok {
		r = robot.New()
		f.robots[name] = r
	}
	return r
}

func (f *Fleet) Names() []string {
	names := make([]string, 0, len(f.robots))
	for n := range f.robots {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *Fleet) Len() int {
	return len(f.robots)
}

func (f *Fleet) String() string {
	parts := make([]string, 0, len(f.robots))
	for _, n := range f.Names() {
		parts = append(parts, n+"="+f.robots[n].String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
