// Package selector implements the action selector: the "act" half of a
// tick. It turns each agent's current-tick belief activations and the
// performance table into one chosen behaviour, consulting the shared RNG
// only when more than one behaviour scores strictly positive.
package selector

import (
	"math/rand"
	"sort"

	"github.com/beliefspread/beliefsim/internal/entity"
	"github.com/beliefspread/beliefsim/internal/graph"
	"github.com/beliefspread/beliefsim/internal/simerr"
)

type scored struct {
	behaviour *entity.Behaviour
	score     float64
}

// Select scores every behaviour against agent's activations at time and
// chooses one, writing the result to agent.actions[time]. rng is consulted
// only under the multiple-positive policy; it is never reset or
// re-seeded here. beliefs and behaviours must be supplied in a stable,
// caller-chosen order — the graph's construction order — since tie-breaks
// and the sampling walk both depend on that order being reproducible.
func Select(
	rng *rand.Rand,
	agent *entity.Agent,
	time int,
	behaviours []*entity.Behaviour,
	beliefs []*entity.Belief,
	table *graph.PerformanceTable,
) (*entity.Behaviour, error) {
	if len(behaviours) == 0 {
		return nil, simerr.Internal("selector: no behaviours to choose from")
	}

	scores := make([]scored, len(behaviours))
	for i, b := range behaviours {
		scores[i] = scored{behaviour: b, score: score(agent, time, b, beliefs, table)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score < scores[j].score
	})

	tail := scores[len(scores)-1]
	if tail.score <= 0 {
		// All non-positive policy: deterministically take the tail of the
		// ascending sort, i.e. the largest (least negative) score. Ties
		// break by the stable sort's preserved input order.
		agent.SetAction(time, tail.behaviour)
		return tail.behaviour, nil
	}

	var positives []scored
	for _, s := range scores {
		if s.score > 0 {
			positives = append(positives, s)
		}
	}
	if len(positives) == 1 {
		agent.SetAction(time, positives[0].behaviour)
		return positives[0].behaviour, nil
	}

	chosen := sampleWeighted(rng, positives)
	agent.SetAction(time, chosen)
	return chosen, nil
}

func score(agent *entity.Agent, time int, behaviour *entity.Behaviour, beliefs []*entity.Belief, table *graph.PerformanceTable) float64 {
	var sum float64
	for _, belief := range beliefs {
		weight, ok := table.Get(belief, behaviour)
		if !ok {
			continue
		}
		activation, _ := agent.Activation(time, belief)
		sum += weight * activation
	}
	return sum
}

// sampleWeighted normalises the strictly-positive scores to a probability
// distribution and samples one behaviour: draw u uniform in [0, 1), walk
// the distribution in iteration order subtracting each probability from u,
// choose the first behaviour where u ≤ 0. Floating-point drift that leaves
// u > 0 after every entry falls back to the last behaviour of the
// iteration.
func sampleWeighted(rng *rand.Rand, positives []scored) *entity.Behaviour {
	var total float64
	for _, s := range positives {
		total += s.score
	}

	u := rng.Float64()
	for _, s := range positives {
		u -= s.score / total
		if u <= 0 {
			return s.behaviour
		}
	}
	return positives[len(positives)-1].behaviour
}
