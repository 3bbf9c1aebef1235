package wire

import (
	"github.com/beliefspread/beliefsim/internal/entity"
	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/google/uuid"
)

// ResolvedPerformance pairs a belief and behaviour pointer with its
// wire-specified weight, after the UUIDs naming them have been resolved
// against the entity arena. The caller decides how duplicates are handled;
// ToEntity reports every record in file order and does not deduplicate.
type ResolvedPerformance struct {
	Belief    *entity.Belief
	Behaviour *entity.Behaviour
	Value     float64
}

// ToEntity resolves parsed wire records into the entity arena, following
// the six-step procedure: behaviours, then beliefs with perception, then
// belief relationships (a second pass so forward references resolve), then
// agents with actions/activations/deltas, then agent friendships, then
// performance relationships. Duplicate primary identifiers within one
// entity kind are an internal error. This is the only function that knows
// about both the wire shapes and the entity arena; everything else sees
// only *entity.Behaviour/*entity.Belief/*entity.Agent pointers and
// ResolvedPerformance tuples.
func ToEntity(
	behaviours []BehaviourSpec,
	beliefs []BeliefSpec,
	agents []AgentSpec,
	prs []PerformanceRelationshipSpec,
) ([]*entity.Behaviour, []*entity.Belief, []*entity.Agent, []ResolvedPerformance, error) {
	behaviourByID := make(map[uuid.UUID]*entity.Behaviour, len(behaviours))
	builtBehaviours := make([]*entity.Behaviour, 0, len(behaviours))
	for _, spec := range behaviours {
		if _, exists := behaviourByID[spec.UUID]; exists {
			return nil, nil, nil, nil, simerr.Internal("duplicate behaviour uuid " + spec.UUID.String())
		}
		b := entity.NewBehaviour(spec.UUID, spec.Name)
		behaviourByID[spec.UUID] = b
		builtBehaviours = append(builtBehaviours, b)
	}

	beliefByID := make(map[uuid.UUID]*entity.Belief, len(beliefs))
	builtBeliefs := make([]*entity.Belief, 0, len(beliefs))
	for _, spec := range beliefs {
		if _, exists := beliefByID[spec.UUID]; exists {
			return nil, nil, nil, nil, simerr.Internal("duplicate belief uuid " + spec.UUID.String())
		}
		belief := entity.NewBelief(spec.UUID, spec.Name)
		beliefByID[spec.UUID] = belief
		builtBeliefs = append(builtBeliefs, belief)
	}
	for _, spec := range beliefs {
		belief := beliefByID[spec.UUID]
		for behaviourID, value := range spec.Perceptions {
			behaviour, ok := behaviourByID[behaviourID]
			if !ok {
				return nil, nil, nil, nil, simerr.UnresolvedReference("belief.perception", behaviourID)
			}
			v := value
			if err := belief.SetPerception(behaviour, &v); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}
	// Second pass: relationships are resolved only after every belief
	// exists, so forward references between beliefs are permitted.
	for _, spec := range beliefs {
		belief := beliefByID[spec.UUID]
		for otherID, value := range spec.Relationships {
			other, ok := beliefByID[otherID]
			if !ok {
				return nil, nil, nil, nil, simerr.UnresolvedReference("belief.relationship", otherID)
			}
			v := value
			if err := belief.SetRelationship(other, &v); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	agentByID := make(map[uuid.UUID]*entity.Agent, len(agents))
	builtAgents := make([]*entity.Agent, 0, len(agents))
	for _, spec := range agents {
		if _, exists := agentByID[spec.UUID]; exists {
			return nil, nil, nil, nil, simerr.Internal("duplicate agent uuid " + spec.UUID.String())
		}
		a := entity.NewAgent(spec.UUID)

		for time, behaviourID := range spec.Actions {
			behaviour, ok := behaviourByID[behaviourID]
			if !ok {
				return nil, nil, nil, nil, simerr.UnresolvedReference("agent.actions", behaviourID)
			}
			a.SetAction(time, behaviour)
		}
		for time, row := range spec.Activations {
			for beliefID, value := range row {
				belief, ok := beliefByID[beliefID]
				if !ok {
					return nil, nil, nil, nil, simerr.UnresolvedReference("agent.activations", beliefID)
				}
				v := value
				if err := a.SetActivation(time, belief, &v); err != nil {
					return nil, nil, nil, nil, err
				}
			}
		}
		for beliefID, value := range spec.Deltas {
			belief, ok := beliefByID[beliefID]
			if !ok {
				return nil, nil, nil, nil, simerr.UnresolvedReference("agent.deltas", beliefID)
			}
			v := value
			a.SetDelta(belief, &v)
		}

		agentByID[spec.UUID] = a
		builtAgents = append(builtAgents, a)
	}
	// Friends are attached only after every agent exists.
	for i, spec := range agents {
		a := builtAgents[i]
		for friendID, weight := range spec.Friends {
			friend, ok := agentByID[friendID]
			if !ok {
				return nil, nil, nil, nil, simerr.UnresolvedReference("agent.friends", friendID)
			}
			w := weight
			if err := a.SetFriend(friend, &w); err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	resolvedPRs := make([]ResolvedPerformance, 0, len(prs))
	for _, spec := range prs {
		belief, ok := beliefByID[spec.BeliefUUID]
		if !ok {
			return nil, nil, nil, nil, simerr.UnresolvedReference("performance.belief", spec.BeliefUUID)
		}
		behaviour, ok := behaviourByID[spec.BehaviourUUID]
		if !ok {
			return nil, nil, nil, nil, simerr.UnresolvedReference("performance.behaviour", spec.BehaviourUUID)
		}
		resolvedPRs = append(resolvedPRs, ResolvedPerformance{Belief: belief, Behaviour: behaviour, Value: spec.Value})
	}

	return builtBehaviours, builtBeliefs, builtAgents, resolvedPRs, nil
}

// AgentsToSpecs converts the final state of agents into their wire
// representation, in the same order they were given. This is the
// serialiser: a full dump, never a diff against the input.
func AgentsToSpecs(agents []*entity.Agent) []AgentSpec {
	specs := make([]AgentSpec, len(agents))
	for i, a := range agents {
		specs[i] = agentToSpec(a)
	}
	return specs
}

func agentToSpec(a *entity.Agent) AgentSpec {
	spec := AgentSpec{
		UUID:        a.ID(),
		Actions:     make(map[int]uuid.UUID),
		Activations: make(map[int]map[uuid.UUID]float64),
		Deltas:      make(map[uuid.UUID]float64),
		Friends:     make(map[uuid.UUID]float64),
	}
	for t, behaviour := range a.Actions() {
		spec.Actions[t] = behaviour.ID()
	}
	for t, row := range a.AllActivations() {
		out := make(map[uuid.UUID]float64, len(row))
		for belief, v := range row {
			out[belief.ID()] = v
		}
		spec.Activations[t] = out
	}
	for belief, v := range a.Deltas() {
		spec.Deltas[belief.ID()] = v
	}
	for friend, weight := range a.Friends() {
		spec.Friends[friend.ID()] = weight
	}
	return spec
}
