package murky

import (
	"fmt"
	"strings"
)

// String renders the tree for human inspection.
//
// The leaves are listed first with their indices,
// then every stored level from the leaf-hash level up to the root,
// one digest per line as 64 lowercase hexadecimal characters.
// The single-digest root level is labeled "Root Hash";
// every other level is labeled by its storage index.
func (t *Tree) String() string {
	var sb strings.Builder

	sb.WriteString("Leaves:\n")
	for i, leaf := range t.leaves {
		fmt.Fprintf(&sb, "  %d: %s\n", i, leaf)
	}

	for i := len(t.levels) - 1; i >= 0; i-- {
		level := t.levels[i]

		if len(level) == 1 {
			sb.WriteString("Root Hash:\n")
		} else {
			fmt.Fprintf(&sb, "Level %d:\n", i)
		}

		for _, d := range level {
			fmt.Fprintf(&sb, "  %s\n", d)
		}
	}

	return sb.String()
}
