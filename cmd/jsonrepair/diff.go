package main

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// printDiff writes a unified diff of original vs. repaired to stdout,
// mirroring this module's teacher's own --diff flag.
func printDiff(name string, original, repaired []byte) {
	origName := name + ".orig"
	old := string(original)
	new := string(repaired)

	edits := myers.ComputeEdits(span.URIFromPath(origName), old, new)
	diff := fmt.Sprint(gotextdiff.ToUnified(origName, name, old, edits))
	if diff == "" {
		return
	}

	fmt.Printf("diff %s %s\n", origName, name)
	fmt.Print(diff)
}
