// Package activation implements the per-agent per-belief activation
// update: the "perceive" half of a tick. It reads only the prior tick's
// state and the immutable entity graph, and writes only the current tick,
// so callers may apply it to every (agent, belief) pair in any order
// within one tick.
package activation

import (
	"github.com/beliefspread/beliefsim/internal/entity"
)

// Update computes agent's activation of belief at time from its activation
// at time-1, the belief-relationship-weighted context of all beliefs, and
// the friend-action-weighted pressure, then clamps the result to [-1, 1]
// and writes it to agent.activations[time][belief]. time must be ≥ the
// simulation's start tick; time-1 must already hold a full activation row
// (either the preloaded initial condition or a prior tick's output).
func Update(agent *entity.Agent, time int, belief *entity.Belief, allBeliefs []*entity.Belief) error {
	context := contextualise(agent, time, belief, allBeliefs)
	pressure := pressurise(agent, time, belief)

	var deltaChange float64
	if pressure >= 0 {
		deltaChange = (1 + context) / 2 * pressure
	} else {
		deltaChange = (1 - context) / 2 * pressure
	}

	prior, _ := agent.Activation(time-1, belief)
	next := clamp(prior+deltaChange, -1, 1)
	return agent.SetActivation(time, belief, &next)
}

// contextualise is the belief-relationship-weighted mean of the agent's
// prior activations, divided by the total belief count regardless of how
// many relationships are nonzero (a fixed denominator, not a count of
// contributing terms).
func contextualise(agent *entity.Agent, time int, belief *entity.Belief, allBeliefs []*entity.Belief) float64 {
	if len(allBeliefs) == 0 {
		return 0
	}
	var sum float64
	for _, other := range allBeliefs {
		weight, ok := belief.Relationship(other)
		if !ok {
			continue
		}
		priorActivation, _ := agent.Activation(time-1, other)
		sum += priorActivation * weight
	}
	return sum / float64(len(allBeliefs))
}

// pressurise is the friend-weighted mean of belief.perception applied to
// each friend's action at time-1. A friend with no recorded action at
// time-1 is omitted from both the numerator and the denominator, not
// treated as a zero contribution. A self-tie is skipped the same way.
func pressurise(agent *entity.Agent, time int, belief *entity.Belief) float64 {
	friends := agent.Friends()
	if len(friends) == 0 {
		return 0
	}
	var sum float64
	var count int
	for friend, weight := range friends {
		if friend == agent {
			continue
		}
		action, ok := friend.Action(time - 1)
		if !ok {
			continue
		}
		perception, _ := belief.Perception(action)
		sum += weight * perception
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
