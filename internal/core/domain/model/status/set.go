package status

import (
	"slices"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Set is a group of status identifiers.
type Set map[kernel.ID]struct{}

func NewSet(ids ...kernel.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// ParseSet reads a comma separated list of identifiers, e.g. "2,3,4".
func ParseSet(raw string) (Set, error) {
	s := Set{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("status set", err)
		}
		id, err := kernel.NewID("status set", v)
		if err != nil {
			return nil, err
		}
		s[id] = struct{}{}
	}
	return s, nil
}

func (s Set) Contains(id kernel.ID) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s Set) IDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s Set) Len() int {
	return len(s)
}

// Groups are the configured status groups consulted by the transition planner.
type Groups struct {
	Processing Set
	Completed  Set
	Terminal   Set
}
