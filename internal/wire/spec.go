// Package wire implements the JSON record shapes of the simulator's input
// and output files, the zstd framing used for the agents file, and the
// conversion between those records and the entity graph's final state. It
// is the only package that imports encoding/json directly; the graph
// builder and the CLI consume the typed records it produces.
package wire

import (
	"encoding/json"

	"github.com/google/uuid"
)

// BehaviourSpec is the wire shape of one behaviours.json entry. A missing
// uuid key is assigned a fresh random UUID on load.
type BehaviourSpec struct {
	Name string
	UUID uuid.UUID
}

type behaviourSpecAux struct {
	Name string     `json:"name"`
	UUID *uuid.UUID `json:"uuid"`
}

// UnmarshalJSON defaults UUID to a freshly generated value when the uuid
// key is absent or null, mirroring the reference implementation's
// default-on-missing behaviour.
func (b *BehaviourSpec) UnmarshalJSON(data []byte) error {
	var aux behaviourSpecAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Name = aux.Name
	if aux.UUID != nil {
		b.UUID = *aux.UUID
	} else {
		b.UUID = uuid.New()
	}
	return nil
}

// MarshalJSON renders the record with an always-present uuid field.
func (b BehaviourSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(behaviourSpecAux{Name: b.Name, UUID: &b.UUID})
}

// BeliefSpec is the wire shape of one beliefs.json entry. Missing
// perceptions/relationships default to empty maps; a missing uuid key is
// assigned a fresh random UUID on load.
type BeliefSpec struct {
	Name          string
	UUID          uuid.UUID
	Perceptions   map[uuid.UUID]float64
	Relationships map[uuid.UUID]float64
}

type beliefSpecAux struct {
	Name          string                 `json:"name"`
	UUID          *uuid.UUID             `json:"uuid"`
	Perceptions   map[uuid.UUID]float64  `json:"perceptions"`
	Relationships map[uuid.UUID]float64  `json:"relationships"`
}

func (b *BeliefSpec) UnmarshalJSON(data []byte) error {
	var aux beliefSpecAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Name = aux.Name
	if aux.UUID != nil {
		b.UUID = *aux.UUID
	} else {
		b.UUID = uuid.New()
	}
	b.Perceptions = aux.Perceptions
	if b.Perceptions == nil {
		b.Perceptions = make(map[uuid.UUID]float64)
	}
	b.Relationships = aux.Relationships
	if b.Relationships == nil {
		b.Relationships = make(map[uuid.UUID]float64)
	}
	return nil
}

func (b BeliefSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(beliefSpecAux{
		Name:          b.Name,
		UUID:          &b.UUID,
		Perceptions:   b.Perceptions,
		Relationships: b.Relationships,
	})
}

// AgentSpec is the wire shape of one agents.json.zst entry. Missing tables
// default to empty; a missing uuid key is assigned a fresh random UUID on
// load.
type AgentSpec struct {
	UUID        uuid.UUID
	Actions     map[int]uuid.UUID
	Activations map[int]map[uuid.UUID]float64
	Deltas      map[uuid.UUID]float64
	Friends     map[uuid.UUID]float64
}

type agentSpecAux struct {
	UUID        *uuid.UUID                     `json:"uuid"`
	Actions     map[int]uuid.UUID              `json:"actions"`
	Activations map[int]map[uuid.UUID]float64  `json:"activations"`
	Deltas      map[uuid.UUID]float64          `json:"deltas"`
	Friends     map[uuid.UUID]float64          `json:"friends"`
}

func (a *AgentSpec) UnmarshalJSON(data []byte) error {
	var aux agentSpecAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.UUID != nil {
		a.UUID = *aux.UUID
	} else {
		a.UUID = uuid.New()
	}
	a.Actions = aux.Actions
	if a.Actions == nil {
		a.Actions = make(map[int]uuid.UUID)
	}
	a.Activations = aux.Activations
	if a.Activations == nil {
		a.Activations = make(map[int]map[uuid.UUID]float64)
	}
	a.Deltas = aux.Deltas
	if a.Deltas == nil {
		a.Deltas = make(map[uuid.UUID]float64)
	}
	a.Friends = aux.Friends
	if a.Friends == nil {
		a.Friends = make(map[uuid.UUID]float64)
	}
	return nil
}

func (a AgentSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(agentSpecAux{
		UUID:        &a.UUID,
		Actions:     a.Actions,
		Activations: a.Activations,
		Deltas:      a.Deltas,
		Friends:     a.Friends,
	})
}

// PerformanceRelationshipSpec is the wire shape of one prs.json entry.
// Unlike the other record kinds, both UUID fields are required: a
// performance record that references nothing is meaningless.
type PerformanceRelationshipSpec struct {
	BehaviourUUID uuid.UUID `json:"behaviourUuid"`
	BeliefUUID    uuid.UUID `json:"beliefUuid"`
	Value         float64   `json:"value"`
}
