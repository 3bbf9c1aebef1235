package wire

import (
	"encoding/json"
	"os"

	"github.com/beliefspread/beliefsim/internal/simerr"
	"github.com/klauspost/compress/zstd"
)

// ReadBehaviours loads a plain-JSON behaviours file.
func ReadBehaviours(path string) ([]BehaviourSpec, error) {
	var specs []BehaviourSpec
	if err := readJSON(path, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// ReadBeliefs loads a plain-JSON beliefs file.
func ReadBeliefs(path string) ([]BeliefSpec, error) {
	var specs []BeliefSpec
	if err := readJSON(path, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// ReadPerformanceRelationships loads a plain-JSON performance relationships
// file.
func ReadPerformanceRelationships(path string) ([]PerformanceRelationshipSpec, error) {
	var specs []PerformanceRelationshipSpec
	if err := readJSON(path, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return simerr.IO(path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return simerr.Parse(path, err)
	}
	return nil
}

// ReadAgents loads the zstd-framed agents file.
func ReadAgents(path string) ([]AgentSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, simerr.IO(path, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, simerr.IO(path, err)
	}
	defer dec.Close()

	var specs []AgentSpec
	if err := json.NewDecoder(dec).Decode(&specs); err != nil {
		return nil, simerr.Parse(path, err)
	}
	return specs, nil
}

// WriteAgents writes agents as the zstd-framed output file, matching the
// reference implementation's zstd level-3 framing.
func WriteAgents(path string, agents []AgentSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return simerr.IO(path, err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return simerr.IO(path, err)
	}

	if err := json.NewEncoder(enc).Encode(agents); err != nil {
		enc.Close()
		return simerr.IO(path, err)
	}
	if err := enc.Close(); err != nil {
		return simerr.IO(path, err)
	}
	return nil
}
