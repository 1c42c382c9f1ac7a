// Package graph renders stage trees as Mermaid flowcharts for inspection.
package graph

import (
	"fmt"
	"strings"

	"github.com/mirageproc/mirage/pkg/pipeline"
)

// GenerateMermaid produces Mermaid flowchart syntax for a stage tree.
// It applies semantic styling:
// - Source leaves: ((Circle))
// - Combinators (sequence, maybe, duplicate): [[Subroutine]]
// - Other stages: [Rectangle]
func GenerateMermaid(root pipeline.Stage) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	walk(&sb, root, &counter{})
	return sb.String()
}

type counter struct {
	n int
}

func (c *counter) next() string {
	id := fmt.Sprintf("n%d", c.n)
	c.n++
	return id
}

func walk(sb *strings.Builder, s pipeline.Stage, ids *counter) string {
	id := ids.next()
	opener, closer := "[", "]"
	switch s.Name() {
	case "source":
		opener, closer = "((", "))"
	case "sequence", "maybe", "duplicate":
		opener, closer = "[[", "]]"
	}
	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label(s), closer))

	for _, child := range s.Children() {
		childID := walk(sb, child, ids)
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, childID))
	}
	return id
}

func label(s pipeline.Stage) string {
	names := s.Bag().Names()
	if len(names) == 0 {
		return s.Name()
	}
	return fmt.Sprintf("%s (%s)", s.Name(), strings.Join(names, ", "))
}
