package types

import "fmt"

// Criteria is one of the six comparison operators recognized by the filter.
//
// IMPORTANT: a criteria names the REJECT condition, not the accept condition.
// With CriteriaLess and cutoff 5, a fragment valued 3 is rejected (3 < 5) and
// a fragment valued 7 is accepted. The same inversion applies to CriteriaEqual
// and CriteriaNotEqual: "==" rejects rows whose value equals the cutoff.
// This polarity is inherited from the original KinFragLib filter and is
// preserved deliberately; downstream callers rely on it.
type Criteria string

// The closed set of supported comparison operators.
const (
	CriteriaLess         Criteria = "<"
	CriteriaGreater      Criteria = ">"
	CriteriaLessEqual    Criteria = "<="
	CriteriaGreaterEqual Criteria = ">="
	CriteriaEqual        Criteria = "=="
	CriteriaNotEqual     Criteria = "!="
)

// RejectFunc reports whether a row with the given value is rejected under
// the given cutoff value.
type RejectFunc func(val, cutoff float64) bool

// rejectFns dispatches each criteria to its reject predicate. Using a closed
// lookup table instead of string branching means an unrecognized symbol fails
// loudly rather than silently classifying nothing.
var rejectFns = map[Criteria]RejectFunc{
	CriteriaLess:         func(v, c float64) bool { return v < c },
	CriteriaGreater:      func(v, c float64) bool { return v > c },
	CriteriaLessEqual:    func(v, c float64) bool { return v <= c },
	CriteriaGreaterEqual: func(v, c float64) bool { return v >= c },
	CriteriaEqual:        func(v, c float64) bool { return v == c },
	CriteriaNotEqual:     func(v, c float64) bool { return v != c },
}

// ParseCriteria converts an operator symbol into a Criteria.
//
// Parameters:
//   - s: Operator symbol, one of "<", ">", "<=", ">=", "==", "!="
//
// Returns:
//   - Criteria: Parsed criteria
//   - error: ErrInvalidCriteria for any other string
func ParseCriteria(s string) (Criteria, error) {
	c := Criteria(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCriteria, s)
	}

	return c, nil
}

// Valid reports whether the criteria is one of the six supported operators.
func (c Criteria) Valid() bool {
	_, ok := rejectFns[c]

	return ok
}

// Predicate returns the reject predicate for the criteria.
//
// Returns:
//   - RejectFunc: Predicate answering "is this row rejected?"
//   - error: ErrInvalidCriteria if the criteria is not supported
func (c Criteria) Predicate() (RejectFunc, error) {
	fn, ok := rejectFns[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCriteria, string(c))
	}

	return fn, nil
}
