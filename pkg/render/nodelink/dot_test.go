package nodelink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/genlayer/pkg/dag"
)

func sampleGraph() *dag.DAG {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "island#1", Row: 0, Meta: dag.Metadata{MetaLayer: "island", MetaModifier: int64(1)}})
	_ = g.AddNode(dag.Node{ID: "ocean_temperature#2", Row: 0, Meta: dag.Metadata{MetaLayer: "ocean_temperature"}})
	_ = g.AddNode(dag.Node{ID: "mix_oceans#3", Row: 1, Meta: dag.Metadata{MetaLayer: "mix_oceans"}})
	_ = g.AddEdge(dag.Edge{From: "island#1", To: "mix_oceans#3"})
	_ = g.AddEdge(dag.Edge{From: "ocean_temperature#2", To: "mix_oceans#3"})
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleGraph(), Options{})

	for _, want := range []string{
		`"island#1" [label="island"`,
		`"island#1" -> "mix_oceans#3";`,
		`{ rank=same; "island#1"; "ocean_temperature#2"; }`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT should be a complete digraph")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	if ToDOT(sampleGraph(), Options{Detailed: true}) != ToDOT(sampleGraph(), Options{Detailed: true}) {
		t.Error("ToDOT should be byte-stable")
	}
}

func TestDetailedLabel(t *testing.T) {
	dot := ToDOT(sampleGraph(), Options{Detailed: true})
	if !strings.Contains(dot, `island\nrow: 0\nmodifier: 1`) {
		t.Errorf("detailed label missing metadata:\n%s", dot)
	}
}

func TestNodeColours(t *testing.T) {
	dot := ToDOT(sampleGraph(), Options{})
	if !strings.Contains(dot, `label="mix_oceans", fillcolor="#fbe3c4"`) {
		t.Errorf("merge layer should be highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `label="island", fillcolor="#d8f0d0"`) {
		t.Errorf("source layer should be highlighted:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`)
	out := normalizeViewBox(in)
	if !bytes.Contains(out, []byte(`viewBox="0 0 10.00 20.00" width="10" height="20"`)) {
		t.Errorf("unexpected root tag: %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Error("SVG without viewBox should pass through")
	}
}
