package entity

import (
	"errors"
	"testing"

	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/google/uuid"
)

func f(v float64) *float64 { return &v }

func TestBeliefPerceptionBounds(t *testing.T) {
	belief := NewBelief(uuid.New(), "Q")
	behaviour := NewBehaviour(uuid.New(), "B")

	if _, ok := belief.Perception(behaviour); ok {
		t.Fatalf("expected absent perception to report ok=false")
	}

	if err := belief.SetPerception(behaviour, f(1.5)); err == nil {
		t.Fatalf("expected OutOfRange error for 1.5")
	} else {
		var serr *simerr.Error
		if !errors.As(err, &serr) || serr.Kind != simerr.KindOutOfRange {
			t.Fatalf("expected KindOutOfRange, got %v", err)
		}
	}

	if err := belief.SetPerception(behaviour, f(0.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := belief.Perception(behaviour)
	if !ok || v != 0.5 {
		t.Fatalf("expected 0.5, got %v ok=%v", v, ok)
	}

	if err := belief.SetPerception(behaviour, nil); err != nil {
		t.Fatalf("unexpected error clearing: %v", err)
	}
	if _, ok := belief.Perception(behaviour); ok {
		t.Fatalf("expected cleared perception to be absent")
	}
}

func TestBeliefRelationshipBounds(t *testing.T) {
	q := NewBelief(uuid.New(), "Q")
	r := NewBelief(uuid.New(), "R")

	if err := q.SetRelationship(r, f(-1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := q.Relationship(r)
	if !ok || v != -1 {
		t.Fatalf("expected -1, got %v ok=%v", v, ok)
	}

	if err := q.SetRelationship(r, f(-1.01)); err == nil {
		t.Fatalf("expected OutOfRange error")
	}
}

func TestAgentActivationBounds(t *testing.T) {
	agent := NewAgent(uuid.New())
	belief := NewBelief(uuid.New(), "Q")

	if _, ok := agent.Activation(0, belief); ok {
		t.Fatalf("expected absent activation to report ok=false")
	}

	if err := agent.SetActivation(0, belief, f(2)); err == nil {
		t.Fatalf("expected OutOfRange error")
	}

	if err := agent.SetActivation(0, belief, f(0.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := agent.Activation(0, belief)
	if !ok || v != 0.5 {
		t.Fatalf("expected 0.5, got %v ok=%v", v, ok)
	}

	row, ok := agent.Activations(0)
	if !ok || len(row) != 1 {
		t.Fatalf("expected activation row of length 1, got %v ok=%v", row, ok)
	}

	if err := agent.SetActivation(0, belief, nil); err != nil {
		t.Fatalf("unexpected error clearing: %v", err)
	}
	if _, ok := agent.Activation(0, belief); ok {
		t.Fatalf("expected cleared activation to be absent")
	}
}

func TestAgentDeltaUnconstrained(t *testing.T) {
	agent := NewAgent(uuid.New())
	belief := NewBelief(uuid.New(), "Q")

	agent.SetDelta(belief, f(1.9))
	v, ok := agent.Delta(belief)
	if !ok || v != 1.9 {
		t.Fatalf("expected 1.9, got %v ok=%v", v, ok)
	}

	agent.SetDelta(belief, f(-5))
	v, ok = agent.Delta(belief)
	if !ok || v != -5 {
		t.Fatalf("expected unconstrained delta to be stored as-is, got %v ok=%v", v, ok)
	}

	agent.SetDelta(belief, nil)
	if _, ok := agent.Delta(belief); ok {
		t.Fatalf("expected cleared delta to be absent")
	}
}

func TestAgentFriendBounds(t *testing.T) {
	a := NewAgent(uuid.New())
	other := NewAgent(uuid.New())

	if err := a.SetFriend(other, f(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := a.Friend(other)
	if !ok || v != 1 {
		t.Fatalf("expected 1, got %v ok=%v", v, ok)
	}

	if len(a.Friends()) != 1 {
		t.Fatalf("expected friends table of length 1")
	}

	if err := a.SetFriend(other, f(-1.2)); err == nil {
		t.Fatalf("expected OutOfRange error")
	}
}
