package api

import (
	"encoding/json"
	"fmt"

	"github.com/Hayk10002/crossword-generator/internal/store"
	"github.com/Hayk10002/crossword-generator/pkg/constraint"
	"github.com/Hayk10002/crossword-generator/pkg/crossword"
	"github.com/Hayk10002/crossword-generator/pkg/search"
	"github.com/Hayk10002/crossword-generator/pkg/word"
)

func marshalPolicy(p PolicySpec) ([]byte, error) {
	return json.Marshal(p)
}

func marshalConstraints(spec ConstraintSpec) ([]byte, error) {
	return json.Marshal(spec)
}

func policyFromJSON(data []byte) (crossword.Policy, error) {
	var spec PolicySpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return crossword.Policy{}, err
	}
	return crossword.Policy{
		SideBySide:     spec.SideBySide,
		HeadByHead:     spec.HeadByHead,
		SideByHead:     spec.SideByHead,
		CornerByCorner: spec.CornerByCorner,
	}, nil
}

func constraintsFromJSON(data []byte) (constraint.Set, error) {
	var spec ConstraintSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	var set constraint.Set
	if spec.MaxLength != nil {
		set = append(set, constraint.MaxLength(*spec.MaxLength))
	}
	if spec.MaxHeight != nil {
		set = append(set, constraint.MaxHeight(*spec.MaxHeight))
	}
	if spec.MaxArea != nil {
		set = append(set, constraint.MaxArea(*spec.MaxArea))
	}
	return set, nil
}

// buildSearch reconstructs a *search.Search from a persisted Job's stored
// policy/constraints, ready to be started by realtime.ServeWs.
func buildSearch(job *store.Job) (*search.Search, error) {
	policy, err := policyFromJSON(job.PolicyJSON)
	if err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}
	constraints, err := constraintsFromJSON(job.ConstraintsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode constraints: %w", err)
	}

	words := make([]word.Word, len(job.Words))
	for i, v := range job.Words {
		words[i] = word.New(v, nil)
	}

	s := search.New(words)
	s.Policy = policy
	s.Constraints = constraints
	if job.Strategy == "randomized" {
		s.Strategy = search.Randomized
	}
	return s, nil
}
