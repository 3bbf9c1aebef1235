package entity

import "github.com/google/uuid"

// Belief is a proposition an agent can hold with varying activation. Its
// perception and relationship tables are sparse: an absent key means zero,
// not an error.
type Belief struct {
	id           uuid.UUID
	name         string
	perception   map[*Behaviour]float64
	relationship map[*Belief]float64
}

// NewBelief constructs a Belief with empty perception and relationship
// tables.
func NewBelief(id uuid.UUID, name string) *Belief {
	return &Belief{
		id:           id,
		name:         name,
		perception:   make(map[*Behaviour]float64),
		relationship: make(map[*Belief]float64),
	}
}

// ID returns the belief's stable identifier.
func (b *Belief) ID() uuid.UUID { return b.id }

// Name returns the belief's display name.
func (b *Belief) Name() string { return b.name }

// Perception returns how strongly performing behaviour signals this belief,
// and whether an entry was present. An absent entry is zero.
func (b *Belief) Perception(behaviour *Behaviour) (float64, bool) {
	v, ok := b.perception[behaviour]
	return v, ok
}

// SetPerception records the perception weight for behaviour. Passing a nil
// value clears any existing entry. A non-nil value outside [-1, 1] fails
// with simerr.OutOfRange.
func (b *Belief) SetPerception(behaviour *Behaviour, value *float64) error {
	if value == nil {
		delete(b.perception, behaviour)
		return nil
	}
	if err := checkUnitRange("perception", *value); err != nil {
		return err
	}
	b.perception[behaviour] = *value
	return nil
}

// Relationship returns how this belief's activation is influenced by the
// concurrent activation of other, and whether an entry was present. An
// absent entry is zero.
func (b *Belief) Relationship(other *Belief) (float64, bool) {
	v, ok := b.relationship[other]
	return v, ok
}

// SetRelationship records the relationship weight toward other. Passing a
// nil value clears any existing entry. A non-nil value outside [-1, 1]
// fails with simerr.OutOfRange.
func (b *Belief) SetRelationship(other *Belief, value *float64) error {
	if value == nil {
		delete(b.relationship, other)
		return nil
	}
	if err := checkUnitRange("relationship", *value); err != nil {
		return err
	}
	b.relationship[other] = *value
	return nil
}
