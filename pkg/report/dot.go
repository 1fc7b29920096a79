package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the report's solutions to an undirected Graphviz graph.
// Each solution is a cluster of its five words, chained in candidate order
// and labeled with the letter it leaves out. Words that occur in more than
// one solution are shaded.
func ToDOT(r *Report) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")

	sols := r.All()
	degree := map[string]int{}
	for _, s := range sols {
		for _, w := range s {
			degree[w]++
		}
	}

	for i, s := range sols {
		n := i + 1
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", n)
		fmt.Fprintf(&buf, "    label=\"#%d missing %s\";\n", n, s.Missing())
		buf.WriteString("    style=rounded;\n")
		for _, w := range s {
			attrs := fmt.Sprintf("label=%q", w)
			if degree[w] > 1 {
				attrs += fmt.Sprintf(", fillcolor=lightgrey, tooltip=\"%d solutions\"", degree[w])
			}
			fmt.Fprintf(&buf, "    %s [%s];\n", dotID(n, w), attrs)
		}
		for a := 1; a < len(s); a++ {
			fmt.Fprintf(&buf, "    %s -- %s;\n", dotID(n, s[a-1]), dotID(n, s[a]))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotID names word w inside solution n; a word shared by several solutions
// gets one node per cluster.
func dotID(n int, w string) string {
	return fmt.Sprintf("s%d_%s", n, w)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
