// Package dump renders scene trees as text for inspection tooling.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-stage/stage/pkg/display"
)

// Dumper writes a box-drawing rendering of a scene tree.
type Dumper struct {
	// Color enables ANSI-colorized output.
	Color bool
	// ShowFlags appends a dirty marker to nodes with unconsumed changes.
	ShowFlags bool
}

// Dump writes the tree rooted at root to w, one node per line in paint
// order. A nil root writes nothing.
func (d *Dumper) Dump(w io.Writer, root *display.Node) error {
	if root == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, d.describe(root)); err != nil {
		return err
	}
	return d.dumpChildren(w, root, "")
}

func (d *Dumper) dumpChildren(w io.Writer, n *display.Node, prefix string) error {
	children := n.Children()
	for i, child := range children {
		branch, descend := "├── ", "│   "
		if i == len(children)-1 {
			branch, descend = "└── ", "    "
		}
		if _, err := fmt.Fprintln(w, prefix+branch+d.describe(child)); err != nil {
			return err
		}
		if err := d.dumpChildren(w, child, prefix+descend); err != nil {
			return err
		}
	}
	return nil
}

// describe formats one node: label plus annotations for non-default state.
func (d *Dumper) describe(n *display.Node) string {
	label := n.Label()
	if label == "" {
		label = "<unlabeled>"
	}
	if d.Color {
		label = color.New(color.FgCyan).Sprint(label)
	}

	var b strings.Builder
	b.WriteString(label)
	if z := n.ZIndex(); z != 0 {
		b.WriteString(d.annotate(fmt.Sprintf(" z=%d", z)))
	}
	if named, ok := n.LayerGroup().(interface{ Name() string }); ok {
		b.WriteString(d.annotate(" layer=" + named.Name()))
	}
	if !n.Visible() {
		b.WriteString(d.annotate(" hidden"))
	}
	if d.ShowFlags && n.DidChange() {
		marker := " *"
		if d.Color {
			marker = color.New(color.FgYellow).Sprint(marker)
		}
		b.WriteString(marker)
	}
	return b.String()
}

func (d *Dumper) annotate(s string) string {
	if d.Color {
		return color.New(color.Faint).Sprint(s)
	}
	return s
}
