package graph

import (
	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/beliefspread/beliefsim/internal/wire"
)

// Build constructs a Graph from parsed wire records. wire.ToEntity does the
// cross-reference resolution; Build's own job is populating the
// performance table and flagging duplicate (belief, behaviour) keys, since
// that bookkeeping belongs to PerformanceTable rather than to UUID
// resolution. Duplicate performance keys are a warning, collected and
// returned alongside the graph; the last occurrence wins.
func Build(
	behaviours []wire.BehaviourSpec,
	beliefs []wire.BeliefSpec,
	agents []wire.AgentSpec,
	prs []wire.PerformanceRelationshipSpec,
) (*Graph, []*simerr.Error, error) {
	builtBehaviours, builtBeliefs, builtAgents, resolvedPRs, err := wire.ToEntity(behaviours, beliefs, agents, prs)
	if err != nil {
		return nil, nil, err
	}

	table := NewPerformanceTable()
	var warnings []*simerr.Error
	for _, rp := range resolvedPRs {
		if existed := table.set(rp.Belief, rp.Behaviour, rp.Value); existed {
			warnings = append(warnings, simerr.DuplicateKey(rp.Belief.ID(), rp.Behaviour.ID()))
		}
	}

	return &Graph{
		Behaviours:  builtBehaviours,
		Beliefs:     builtBeliefs,
		Agents:      builtAgents,
		Performance: table,
	}, warnings, nil
}
