// Package entity holds the value types of the simulation's social graph:
// Behaviour, Belief, and Agent. Entities are constructed once while the
// graph is built (by wire.ToEntity, called from graph.Build) and live for
// the entire run. Cross-entity references are non-owning Go pointers into
// the arena the resulting graph.Graph holds, so equality and hashing of
// entities fall out of pointer identity for free.
package entity

import "github.com/google/uuid"

// Behaviour is an observable action an agent can perform. It is immutable
// after construction.
type Behaviour struct {
	id   uuid.UUID
	name string
}

// NewBehaviour constructs a Behaviour with the given identity and name.
func NewBehaviour(id uuid.UUID, name string) *Behaviour {
	return &Behaviour{id: id, name: name}
}

// ID returns the behaviour's stable identifier.
func (b *Behaviour) ID() uuid.UUID { return b.id }

// Name returns the behaviour's display name.
func (b *Behaviour) Name() string { return b.name }
