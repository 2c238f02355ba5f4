package model

import "fmt"

// DuplicatePolicy decides what happens when a parser meets a key it has
// already filled.
type DuplicatePolicy string

const (
	// PolicyOverwrite replaces the earlier value entirely. Later wins.
	PolicyOverwrite DuplicatePolicy = "overwrite"
	// PolicyAppend keeps the earlier value and adds to it. Only meaningful
	// for list-valued entities (frequency blocks).
	PolicyAppend DuplicatePolicy = "append"
	// PolicyKeepFirst rejects the duplicate and keeps the earlier value.
	PolicyKeepFirst DuplicatePolicy = "keep-first"
)

// Policies selects a DuplicatePolicy per entity type.
type Policies struct {
	Dimensions      DuplicatePolicy // repeated (group, type, range) dimension rows
	FrequencyBlocks DuplicatePolicy // repeated "50 Hz"/"60 Hz" markers in one section
	VSDStages       DuplicatePolicy // repeated stage rows in one VSD segment
}

// DefaultPolicies returns last-write-wins for every entity type.
func DefaultPolicies() Policies {
	return Policies{
		Dimensions:      PolicyOverwrite,
		FrequencyBlocks: PolicyOverwrite,
		VSDStages:       PolicyOverwrite,
	}
}

// Validate checks that every policy is known and allowed for its entity.
func (p Policies) Validate() error {
	if err := p.Dimensions.validate(false); err != nil {
		return fmt.Errorf("dimensions policy: %w", err)
	}
	if err := p.FrequencyBlocks.validate(true); err != nil {
		return fmt.Errorf("frequency block policy: %w", err)
	}
	if err := p.VSDStages.validate(false); err != nil {
		return fmt.Errorf("VSD stage policy: %w", err)
	}
	return nil
}

func (d DuplicatePolicy) validate(allowAppend bool) error {
	switch d {
	case PolicyOverwrite, PolicyKeepFirst:
		return nil
	case PolicyAppend:
		if allowAppend {
			return nil
		}
		return fmt.Errorf("%q is only valid for list-valued entities", d)
	default:
		return fmt.Errorf("unknown duplicate policy %q", d)
	}
}

// ParsePolicy converts a configuration string to a DuplicatePolicy.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	d := DuplicatePolicy(s)
	if err := d.validate(true); err != nil {
		return "", err
	}
	return d, nil
}
