package domain

import "slices"

// TargetProfile describes a protein target that molecules can be scored against.
type TargetProfile struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// TargetSet is the enumerated set of valid targets.
type TargetSet struct {
	profiles map[string]TargetProfile
	order    []string
}

// NewTargetSet builds a target set. Identifiers are normalized; later duplicates are ignored.
func NewTargetSet(profiles ...TargetProfile) TargetSet {
	set := TargetSet{profiles: make(map[string]TargetProfile, len(profiles))}
	for _, p := range profiles {
		p.ID = NormalizeTarget(p.ID)
		if p.ID == "" {
			continue
		}
		if _, ok := set.profiles[p.ID]; ok {
			continue
		}
		set.profiles[p.ID] = p
		set.order = append(set.order, p.ID)
	}
	return set
}

// Contains reports whether the target belongs to the set.
func (s TargetSet) Contains(target string) bool {
	_, ok := s.profiles[NormalizeTarget(target)]
	return ok
}

// Get returns the profile of a target.
func (s TargetSet) Get(target string) (TargetProfile, bool) {
	p, ok := s.profiles[NormalizeTarget(target)]
	return p, ok
}

// Profiles returns all profiles sorted by identifier.
func (s TargetSet) Profiles() []TargetProfile {
	ids := slices.Clone(s.order)
	slices.Sort(ids)
	out := make([]TargetProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.profiles[id])
	}
	return out
}

// Len returns the number of targets.
func (s TargetSet) Len() int {
	return len(s.order)
}
