// Package graph builds the entity graph from parsed wire records. Build
// delegates entity construction, cross-reference resolution, and the
// linking of friendship, perception, and belief-relationship edges to
// wire.ToEntity, then fills the performance table itself. The resulting
// Graph holds the arena of every entity the run uses.
package graph

import "github.com/beliefspread/beliefsim/internal/entity"

// Graph is the populated entity model plus the dense performance table,
// produced once by Build and mutated only by the runner thereafter.
type Graph struct {
	Behaviours  []*entity.Behaviour
	Beliefs     []*entity.Belief
	Agents      []*entity.Agent
	Performance *PerformanceTable
}
