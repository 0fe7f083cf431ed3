package teambuilding

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSameActivitySet(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	p := &Partecipation{ChosenActivityIDs: ActivityIDStrings([]uuid.UUID{a, b})}

	assert.True(t, p.SameActivitySet([]uuid.UUID{a, b}))
	assert.True(t, p.SameActivitySet([]uuid.UUID{b, a}), "order does not matter")
	assert.True(t, p.SameActivitySet([]uuid.UUID{a, b, a}), "duplicates do not matter")
	assert.False(t, p.SameActivitySet([]uuid.UUID{a}))
	assert.False(t, p.SameActivitySet([]uuid.UUID{a, c}))
	assert.False(t, p.SameActivitySet(nil))
}

func TestChosenActivityUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	p := &Partecipation{ChosenActivityIDs: ActivityIDStrings([]uuid.UUID{a, b})}
	assert.Equal(t, []uuid.UUID{a, b}, p.ChosenActivityUUIDs())

	p.ChosenActivityIDs = append(p.ChosenActivityIDs, "not-a-uuid")
	assert.Equal(t, []uuid.UUID{a, b}, p.ChosenActivityUUIDs(), "malformed entries are skipped")
}
