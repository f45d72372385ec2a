// Package graphview renders a csp.Problem's constraint graph — variables
// as vertices, constraints as directed edges — for debugging, using
// github.com/katalvlaran/lvlath/core as the graph representation and
// emitting Graphviz DOT. This is pretty-printing/debugging output,
// explicitly outside pkg/csp's scope, in the same sense the teacher's
// own store_debug.go is a debugging aid layered on top of its core.
package graphview

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath/core"

	"github.com/gitrdm/gokancsp/pkg/csp"
)

// Build converts p's variables and constraints into an lvlath graph.
// Each variable key becomes a vertex (named by its fmt.Sprint form);
// each constraint becomes a directed edge from its x-key to its y-key.
// Parallel constraints between the same pair of keys each get their
// own edge (the graph is built WithMultiEdges), so the edge list
// mirrors the constraint list. WithLoops is set because pkg/csp
// permits a constraint whose two keys are equal.
func Build(p *csp.Problem) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())

	for _, k := range p.Keys() {
		if err := g.AddVertex(fmt.Sprint(k)); err != nil {
			return nil, fmt.Errorf("graphview: add vertex %v: %w", k, err)
		}
	}

	for _, c := range p.Constraints() {
		from, to := fmt.Sprint(c.X), fmt.Sprint(c.Y)
		if _, err := g.AddEdge(from, to, 0); err != nil {
			return nil, fmt.Errorf("graphview: add edge %v -> %v: %w", c.X, c.Y, err)
		}
	}

	return g, nil
}

// DOT renders g as a Graphviz "digraph" description.
func DOT(g *core.Graph) string {
	var b strings.Builder
	b.WriteString("digraph constraints {\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "\t%q;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "\t%q -> %q;\n", e.From, e.To)
	}
	b.WriteString("}\n")
	return b.String()
}
