package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation_PerField(t *testing.T) {
	v := NewValidation()
	v.Positive("span", -1)
	v.Range("ratio", 3, 0, 1)
	v.OneOf("mode", "bogus", "a", "b")
	v.NonNegative("offset", 0)

	errs := v.Errors()
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "span")
	assert.Contains(t, errs, "ratio")
	assert.Contains(t, errs, "mode")
	assert.NotContains(t, errs, "offset")
}

func TestValidation_FirstMessageWins(t *testing.T) {
	v := NewValidation()
	v.Positive("x", -1)
	v.Range("x", -1, 0, 10)
	errs := v.Errors()
	assert.Equal(t, "must be greater than zero", errs["x"])
}

func TestValidation_RefineRunsOnlyWhenFieldsPass(t *testing.T) {
	t.Run("fields failed, refine skipped", func(t *testing.T) {
		ran := false
		v := NewValidation()
		v.Positive("a", -1)
		v.Refine("b", func() bool { ran = true; return false }, "cross-field broke")
		errs := v.Errors()
		assert.False(t, ran)
		assert.NotContains(t, errs, "b")
	})

	t.Run("fields passed, refine reported", func(t *testing.T) {
		v := NewValidation()
		v.Positive("a", 1)
		v.Refine("b", func() bool { return false }, "cross-field broke")
		errs := v.Errors()
		assert.Equal(t, "cross-field broke", errs["b"])
	})
}

func TestValidation_CleanInput(t *testing.T) {
	v := NewValidation()
	v.Positive("a", 1)
	v.Refine("b", func() bool { return true }, "unused")
	assert.True(t, v.Errors().OK())
}
