package kdtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// dumpPalette colors a preorder tree dump by cutting dimension, so a
// developer staring at a debug dump can see at a glance which axis
// governs each level without counting indentation.
var dumpPalette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

func colorFor(axis int) *color.Color {
	return dumpPalette[axis%len(dumpPalette)]
}

// terminalWidth returns the current terminal width for wrapping the dump,
// falling back to 80 columns when standard input (file descriptor 0) is
// not a terminal (redirected from a file, piped, running under a test
// harness).
func terminalWidth() int {
	if !term.IsTerminal(0) {
		return 80
	}
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		return w
	}
	return 80
}

// DumpFrozen writes a preorder, indented, axis-colored rendering of t to
// w, one node per line as "axis: value", indented two spaces per level of
// depth. Colors are suppressed
// automatically by the color package when w is not a terminal.
func DumpFrozen[K, V any](w io.Writer, t *FrozenTree[K, V], format func(V) string) {
	if t.count == 0 {
		return
	}
	width := terminalWidth()
	depths := map[*node[V]]int{}
	root := t.root()
	depths[root] = 0
	for n := root; !isHeader(n); n = preorderIncrement(n) {
		depth := depths[n]
		axis := depth % t.Dim()
		line := fmt.Sprintf("%s%d: %s", strings.Repeat("  ", depth), axis, format(n.value))
		if len(line) > width {
			line = line[:width]
		}
		colorFor(axis).Fprintln(w, line)
		if n.left != nil {
			depths[n.left] = depth + 1
		}
		if n.right != nil {
			depths[n.right] = depth + 1
		}
	}
}

// DumpRelaxed writes a preorder, indented, axis-colored rendering of t to
// w, additionally showing each node's subtree weight.
func DumpRelaxed[K, V any](w io.Writer, t *RelaxedTree[K, V], format func(V) string) {
	if t.count == 0 {
		return
	}
	width := terminalWidth()
	depths := map[*rnode[V]]int{}
	root := t.root()
	depths[root] = 0
	for n := root; !isRHeader(n); n = rpreorderIncrement(n) {
		depth := depths[n]
		axis := depth % t.Dim()
		line := fmt.Sprintf("%s%d: %s (w=%d)", strings.Repeat("  ", depth), axis, format(n.value), n.weight)
		if len(line) > width {
			line = line[:width]
		}
		colorFor(axis).Fprintln(w, line)
		if n.left != nil {
			depths[n.left] = depth + 1
		}
		if n.right != nil {
			depths[n.right] = depth + 1
		}
	}
}
