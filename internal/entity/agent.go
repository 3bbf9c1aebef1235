package entity

import "github.com/google/uuid"

// Agent is one member of the simulated population. Its actions and
// activations tables are keyed by tick; its deltas and friends tables are
// keyed by entity pointer. The random-number source used during action
// selection is not stored on Agent: it is owned by the runner and threaded
// explicitly into the selector, so Agent stays plain data.
type Agent struct {
	id          uuid.UUID
	actions     map[int]*Behaviour
	activations map[int]map[*Belief]float64
	deltas      map[*Belief]float64
	friends     map[*Agent]float64
}

// NewAgent constructs an Agent with empty tables.
func NewAgent(id uuid.UUID) *Agent {
	return &Agent{
		id:          id,
		actions:     make(map[int]*Behaviour),
		activations: make(map[int]map[*Belief]float64),
		deltas:      make(map[*Belief]float64),
		friends:     make(map[*Agent]float64),
	}
}

// ID returns the agent's stable identifier.
func (a *Agent) ID() uuid.UUID { return a.id }

// Action returns the behaviour chosen at time, and whether one was set.
func (a *Agent) Action(time int) (*Behaviour, bool) {
	b, ok := a.actions[time]
	return b, ok
}

// SetAction records the behaviour chosen at time. A nil behaviour clears any
// existing entry for that time.
func (a *Agent) SetAction(time int, behaviour *Behaviour) {
	if behaviour == nil {
		delete(a.actions, time)
		return
	}
	a.actions[time] = behaviour
}

// Activation returns the agent's activation of belief at time, and whether
// an entry was present. An absent entry is zero.
func (a *Agent) Activation(time int, belief *Belief) (float64, bool) {
	row, ok := a.activations[time]
	if !ok {
		return 0, false
	}
	v, ok := row[belief]
	return v, ok
}

// SetActivation records the agent's activation of belief at time. A nil
// value clears any existing entry. A non-nil value outside [-1, 1] fails
// with simerr.OutOfRange.
func (a *Agent) SetActivation(time int, belief *Belief, value *float64) error {
	if value == nil {
		if row, ok := a.activations[time]; ok {
			delete(row, belief)
		}
		return nil
	}
	if err := checkUnitRange("activation", *value); err != nil {
		return err
	}
	row, ok := a.activations[time]
	if !ok {
		row = make(map[*Belief]float64)
		a.activations[time] = row
	}
	row[belief] = *value
	return nil
}

// Activations returns the full activation row for time, and whether any
// entry has been written for it. The returned map must not be mutated.
func (a *Agent) Activations(time int) (map[*Belief]float64, bool) {
	row, ok := a.activations[time]
	return row, ok
}

// Delta returns the agent's per-belief learning coefficient, and whether an
// entry was present. An absent entry is zero. Deltas are unconstrained
// reals, typically in [0, 2].
func (a *Agent) Delta(belief *Belief) (float64, bool) {
	v, ok := a.deltas[belief]
	return v, ok
}

// SetDelta records the agent's delta for belief. A nil value clears any
// existing entry. Deltas are not bound-checked.
func (a *Agent) SetDelta(belief *Belief, value *float64) {
	if value == nil {
		delete(a.deltas, belief)
		return
	}
	a.deltas[belief] = *value
}

// Friend returns the signed tie weight toward other, and whether an entry
// was present. An absent entry is zero.
func (a *Agent) Friend(other *Agent) (float64, bool) {
	v, ok := a.friends[other]
	return v, ok
}

// SetFriend records the tie weight toward other. A nil value clears any
// existing entry. A non-nil value outside [-1, 1] fails with
// simerr.OutOfRange. Self-ties are accepted here; the activation kernel
// treats them as a no-op.
func (a *Agent) SetFriend(other *Agent, value *float64) error {
	if value == nil {
		delete(a.friends, other)
		return nil
	}
	if err := checkUnitRange("friend", *value); err != nil {
		return err
	}
	a.friends[other] = *value
	return nil
}

// Friends returns the agent's friend table. The returned map must not be
// mutated.
func (a *Agent) Friends() map[*Agent]float64 {
	return a.friends
}

// Actions returns the agent's full time→behaviour table, for
// serialisation. The returned map must not be mutated.
func (a *Agent) Actions() map[int]*Behaviour {
	return a.actions
}

// AllActivations returns the agent's full time→belief→activation table, for
// serialisation. The returned map and its rows must not be mutated.
func (a *Agent) AllActivations() map[int]map[*Belief]float64 {
	return a.activations
}

// Deltas returns the agent's full belief→delta table, for serialisation.
// The returned map must not be mutated.
func (a *Agent) Deltas() map[*Belief]float64 {
	return a.deltas
}
