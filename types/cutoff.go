package types

import "fmt"

// Cutoff is the accept/reject boundary: a numeric threshold and the
// comparison operator naming the reject condition.
//
// See Criteria for the reject-on-match polarity of the operators.
type Cutoff struct {
	// Value is the numeric threshold compared against each row's value.
	Value float64 `yaml:"value" json:"value"`

	// Criteria names the reject condition relative to Value.
	Criteria Criteria `yaml:"criteria" json:"criteria"`
}

// DefaultCutoff returns the default boundary: reject rows whose value is
// below zero.
func DefaultCutoff() Cutoff {
	return Cutoff{
		Value:    0,
		Criteria: CriteriaLess,
	}
}

// Validate checks that the cutoff uses a supported criteria.
//
// Returns:
//   - error: ErrInvalidCriteria (wrapped) if the criteria is not supported, nil otherwise
func (c Cutoff) Validate() error {
	if !c.Criteria.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCriteria, string(c.Criteria))
	}

	return nil
}

// Rejects reports whether a row with the given value falls on the reject
// side of the boundary.
//
// Returns:
//   - bool: true when the row is rejected
//   - error: ErrInvalidCriteria if the criteria is not supported
func (c Cutoff) Rejects(val float64) (bool, error) {
	fn, err := c.Criteria.Predicate()
	if err != nil {
		return false, err
	}

	return fn(val, c.Value), nil
}
