package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/trajfilter/pkg/adapters/file"
	"github.com/aretw0/trajfilter/pkg/registry"
)

// RunValidate checks that the trajectory file at path parses and is well formed.
func RunValidate(path string, w io.Writer) error {
	t, err := file.LoadTrajectory(path)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d joints, %d points, duration %s\n", path, len(t.JointNames), len(t.Points), t.Duration())
	return nil
}

// ListTypes prints the filter types known to reg, one per line.
func ListTypes(reg *registry.Registry, w io.Writer) {
	for _, name := range reg.Types() {
		fmt.Fprintln(w, name)
	}
}
