package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	r, ok := Parse(" doctor ")
	assert.True(t, ok)
	assert.Equal(t, Doctor, r)

	_, ok = Parse("nurse")
	assert.False(t, ok)
}

func TestIsStaff(t *testing.T) {
	assert.True(t, Admin.IsStaff())
	assert.True(t, Therapist.IsStaff())
	assert.False(t, User.IsStaff())
}
