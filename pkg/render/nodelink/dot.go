package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/genlayer/pkg/dag"
)

// Metadata keys read from nodes.
const (
	MetaLayer    = "layer"
	MetaIndex    = "index"
	MetaModifier = "modifier"
	MetaCache    = "cache"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the row and all metadata to node labels.
	// When false, only the layer name is shown.
	Detailed bool
}

// ToDOT converts a layer DAG to Graphviz DOT. Nodes are emitted in graph
// insertion order and rows are pinned with rank=same, so the same graph
// always produces the same DOT.
//
// Source layers (no inputs) are filled green and merge layers (two inputs)
// orange.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtAttrs(g, *n, fmtLabel(*n, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, row := range g.RowIDs() {
		ids := make([]string, 0, len(g.NodesInRow(row)))
		for _, n := range g.NodesInRow(row) {
			ids = append(ids, strconv.Quote(n.ID))
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, detailed bool) string {
	name := n.ID
	if l, ok := n.Meta[MetaLayer].(string); ok {
		name = l
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("row: %d", n.Row)}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		if k == MetaLayer {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(g *dag.DAG, n dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case g.InDegree(n.ID) == 0:
		attrs = append(attrs, "fillcolor=\"#d8f0d0\"")
	case g.InDegree(n.ID) > 1:
		attrs = append(attrs, "fillcolor=\"#fbe3c4\"")
	}
	return attrs
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from its
// viewBox origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
