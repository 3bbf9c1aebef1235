// Package visualization renders a built graph as Graphviz DOT, for
// inspecting the belief/behaviour/agent network a run was given before
// spending ticks on it.
package visualization

import (
	"fmt"
	"strings"

	"github.com/beliefspread/beliefsim/internal/graph"
	"github.com/google/uuid"
)

// RenderDOT produces a Graphviz DOT representation of g: a belief subgraph
// (belief-belief relationships and belief-behaviour perceptions) and an
// agent friend subgraph, as two clusters in one digraph.
func RenderDOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph beliefsim {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  subgraph cluster_beliefs {\n")
	b.WriteString("    label=\"beliefs\";\n")
	for _, belief := range g.Beliefs {
		fmt.Fprintf(&b, "    %q [fillcolor=steelblue, label=%q];\n", nodeID(belief.ID()), belief.Name())
	}
	for _, behaviour := range g.Behaviours {
		fmt.Fprintf(&b, "    %q [fillcolor=goldenrod, label=%q, shape=ellipse];\n", nodeID(behaviour.ID()), behaviour.Name())
	}
	for _, from := range g.Beliefs {
		for _, to := range g.Beliefs {
			if from == to {
				continue
			}
			if weight, ok := from.Relationship(to); ok {
				fmt.Fprintf(&b, "    %q -> %q [label=%q, style=dashed];\n", nodeID(from.ID()), nodeID(to.ID()), fmt.Sprintf("%.2f", weight))
			}
		}
		for _, behaviour := range g.Behaviours {
			if weight, ok := from.Perception(behaviour); ok {
				fmt.Fprintf(&b, "    %q -> %q [label=%q, style=solid];\n", nodeID(from.ID()), nodeID(behaviour.ID()), fmt.Sprintf("%.2f", weight))
			}
		}
	}
	b.WriteString("  }\n\n")

	b.WriteString("  subgraph cluster_agents {\n")
	b.WriteString("    label=\"agents\";\n")
	for _, agent := range g.Agents {
		fmt.Fprintf(&b, "    %q [fillcolor=mediumseagreen, label=%q, shape=circle];\n", nodeID(agent.ID()), shortID(agent.ID()))
	}
	seen := make(map[string]bool)
	for _, agent := range g.Agents {
		for friend, weight := range agent.Friends() {
			key := agent.ID().String() + "|" + friend.ID().String()
			if seen[key] {
				continue
			}
			seen[key] = true
			fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", nodeID(agent.ID()), nodeID(friend.ID()), fmt.Sprintf("%.2f", weight))
		}
	}
	b.WriteString("  }\n")

	b.WriteString("}\n")
	return b.String()
}

func nodeID(id uuid.UUID) string {
	return "n" + strings.ReplaceAll(id.String(), "-", "")
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[:8]
}
