package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	t.Parallel()

	for _, sym := range []string{"<", ">", "<=", ">=", "==", "!="} {
		c, err := ParseCriteria(sym)
		require.NoError(t, err)
		require.Equal(t, Criteria(sym), c)
		require.True(t, c.Valid())
	}

	for _, sym := range []string{"", "=", "<>", "=>", "less", "≤"} {
		_, err := ParseCriteria(sym)
		require.ErrorIs(t, err, ErrInvalidCriteria)
	}
}

func TestCriteriaPredicate_RejectPolarity(t *testing.T) {
	t.Parallel()

	// The criteria names the REJECT condition, not the accept condition.
	tests := []struct {
		criteria Criteria
		val      float64
		cutoff   float64
		reject   bool
	}{
		{CriteriaLess, 3, 5, true},
		{CriteriaLess, 5, 5, false},
		{CriteriaLess, 7, 5, false},
		{CriteriaGreater, 7, 5, true},
		{CriteriaGreater, 5, 5, false},
		{CriteriaGreater, 3, 5, false},
		{CriteriaLessEqual, 5, 5, true},
		{CriteriaLessEqual, 6, 5, false},
		{CriteriaGreaterEqual, 5, 5, true},
		{CriteriaGreaterEqual, 4, 5, false},
		{CriteriaEqual, 0, 0, true},
		{CriteriaEqual, 1, 0, false},
		{CriteriaNotEqual, 2, 2, false},
		{CriteriaNotEqual, 3, 2, true},
	}

	for _, tt := range tests {
		fn, err := tt.criteria.Predicate()
		require.NoError(t, err)
		require.Equal(t, tt.reject, fn(tt.val, tt.cutoff),
			"criteria %q val %v cutoff %v", tt.criteria, tt.val, tt.cutoff)
	}
}

func TestCriteriaPredicate_Invalid(t *testing.T) {
	t.Parallel()

	fn, err := Criteria("~=").Predicate()
	require.ErrorIs(t, err, ErrInvalidCriteria)
	require.Nil(t, fn)
}

func TestCutoffValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultCutoff().Validate())
	require.NoError(t, Cutoff{Value: 3.5, Criteria: CriteriaGreaterEqual}.Validate())

	err := Cutoff{Value: 1, Criteria: "between"}.Validate()
	require.ErrorIs(t, err, ErrInvalidCriteria)

	// Zero value has an empty criteria and must not validate.
	require.ErrorIs(t, Cutoff{}.Validate(), ErrInvalidCriteria)
}

func TestCutoffRejects(t *testing.T) {
	t.Parallel()

	c := Cutoff{Value: 5, Criteria: CriteriaLess}

	rejected, err := c.Rejects(3)
	require.NoError(t, err)
	require.True(t, rejected)

	rejected, err = c.Rejects(5)
	require.NoError(t, err)
	require.False(t, rejected)

	_, err = Cutoff{Value: 5, Criteria: "??"}.Rejects(3)
	require.ErrorIs(t, err, ErrInvalidCriteria)
}
