// Package runner drives the simulation's per-tick state machine: for each
// tick it runs the activation kernel across every agent and belief, then
// the action selector across every agent, in that order, and reports
// progress as it goes. It owns the single seedable RNG the action selector
// draws from.
package runner

import (
	"log/slog"
	"math/rand"

	"github.com/beliefspread/beliefsim/internal/activation"
	"github.com/beliefspread/beliefsim/internal/graph"
	"github.com/beliefspread/beliefsim/internal/selector"
	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/google/uuid"
)

// Runner evolves a Graph across the tick range [Start, End] and leaves the
// final state on the agents themselves.
type Runner struct {
	Graph  *graph.Graph
	Start  int
	End    int
	Logger *slog.Logger
	rng    *rand.Rand
}

// New constructs a Runner. seed fixes the action-selector RNG so runs are
// reproducible; logger receives one event per phase transition.
func New(g *graph.Graph, start, end int, seed int64, logger *slog.Logger) *Runner {
	return &Runner{
		Graph:  g,
		Start:  start,
		End:    end,
		Logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run executes every tick from Start to End inclusive. Within a tick, every
// activation is written before any action is chosen, so actions at t can
// depend on activations at t without reading partial data. A kernel
// failure aborts the whole run with the offending (agent, time, belief)
// identified; no partial output is written by this package — the caller
// serialises only on a nil return.
func (r *Runner) Run() error {
	r.Logger.Info("run starting", "start", r.Start, "end", r.End)

	for t := r.Start; t <= r.End; t++ {
		r.Logger.Info("perceiving", "tick", t)
		for _, agent := range r.Graph.Agents {
			for _, belief := range r.Graph.Beliefs {
				if err := activation.Update(agent, t, belief, r.Graph.Beliefs); err != nil {
					return simerr.Tick(err, agent.ID(), t, belief.ID())
				}
			}
		}

		r.Logger.Info("acting", "tick", t)
		for _, agent := range r.Graph.Agents {
			if _, err := selector.Select(r.rng, agent, t, r.Graph.Behaviours, r.Graph.Beliefs, r.Graph.Performance); err != nil {
				return simerr.Tick(err, agent.ID(), t, uuid.Nil)
			}
		}
	}

	r.Logger.Info("run complete", "start", r.Start, "end", r.End)
	return nil
}
