package interpreter

import (
	"fmt"
	"io"
)

// Report writes one line per robot in name order.
func (f *Fleet) Report(w io.Writer) error {
	for _, name := range f.Names() {
		if _, err := fmt.Fprintf(w, "%s %s\n", name, f.robots[name]); err != nil {
			return err
		}
	}
	return nil
}
