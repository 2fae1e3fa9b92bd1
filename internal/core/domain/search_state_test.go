package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchState_ZeroValue(t *testing.T) {
	var s SearchState

	assert.Equal(t, "", s.Query)
	assert.False(t, s.Busy)
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestSearchState_BeginRejectsBlankQueries(t *testing.T) {
	for _, q := range []string{"", " ", "   ", "\t\n"} {
		s := SearchState{}
		s.SetQuery(q)

		assert.False(t, s.Begin(), "query %q", q)
		assert.False(t, s.Busy)
		assert.Equal(t, q, s.Query)
	}
}

func TestSearchState_BeginAndFinish(t *testing.T) {
	s := SearchState{}
	s.SetQuery("castle")

	assert.True(t, s.Begin())
	assert.True(t, s.Busy)
	assert.Equal(t, PhaseBusy, s.Phase())

	assert.True(t, s.Finish())
	assert.False(t, s.Busy)

	// A second finish must not transition again.
	assert.False(t, s.Finish())
	assert.False(t, s.Busy)
}

func TestSearchState_BeginWhileBusy(t *testing.T) {
	s := SearchState{}
	s.SetQuery("castle")
	assert.True(t, s.Begin())

	assert.False(t, s.Begin())
	assert.False(t, s.CanSubmit())
	assert.True(t, s.Busy)
}

func TestSearchState_SetQueryKeepsBusy(t *testing.T) {
	s := SearchState{}
	s.SetQuery("castle")
	s.Begin()

	s.SetQuery("")
	assert.True(t, s.Busy)

	s.SetQuery("castle")
	s.SetQuery("castle")
	assert.True(t, s.Busy)
	assert.Equal(t, "castle", s.Query)
}
