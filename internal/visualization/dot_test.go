package visualization

import (
	"strings"
	"testing"

	"github.com/beliefspread/beliefsim/internal/entity"
	"github.com/beliefspread/beliefsim/internal/graph"
	"github.com/google/uuid"
)

func TestRenderDOT_Empty(t *testing.T) {
	g := &graph.Graph{Performance: graph.NewPerformanceTable()}
	out := RenderDOT(g)
	if !strings.HasPrefix(out, "digraph beliefsim {") {
		t.Fatalf("expected digraph header, got %q", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("expected closing brace, got %q", out)
	}
}

func TestRenderDOT_IncludesNodesAndEdges(t *testing.T) {
	belief := entity.NewBelief(uuid.New(), "Q")
	behaviour := entity.NewBehaviour(uuid.New(), "B")
	v := 0.5
	if err := belief.SetPerception(behaviour, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a1 := entity.NewAgent(uuid.New())
	a2 := entity.NewAgent(uuid.New())
	fw := 0.8
	if err := a1.SetFriend(a2, &fw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := &graph.Graph{
		Behaviours:  []*entity.Behaviour{behaviour},
		Beliefs:     []*entity.Belief{belief},
		Agents:      []*entity.Agent{a1, a2},
		Performance: graph.NewPerformanceTable(),
	}

	out := RenderDOT(g)
	if !strings.Contains(out, `label="Q"`) {
		t.Errorf("expected belief node label, got %q", out)
	}
	if !strings.Contains(out, `label="B"`) {
		t.Errorf("expected behaviour node label, got %q", out)
	}
	if !strings.Contains(out, `label="0.50"`) {
		t.Errorf("expected perception edge label, got %q", out)
	}
	if !strings.Contains(out, `label="0.80"`) {
		t.Errorf("expected friend edge label, got %q", out)
	}
}
