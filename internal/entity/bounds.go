package entity

import "github.com/beliefspread/beliefsim/internal/simerr"

// inUnitRange reports whether v lies in the closed interval [-1, 1].
func inUnitRange(v float64) bool {
	return v >= -1 && v <= 1
}

// checkUnitRange validates v against [-1, 1], returning a simerr.Error
// tagged KindOutOfRange when it falls outside that bound.
func checkUnitRange(field string, v float64) error {
	if !inUnitRange(v) {
		return simerr.OutOfRange(field, v)
	}
	return nil
}
