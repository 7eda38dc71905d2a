package category

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMatchesFirstValidSchema(t *testing.T) {
	c, err := Resolve(map[string]any{
		"title":       "Elden Ring",
		"platform":    "PS5",
		"developer":   "FromSoftware",
		"releaseYear": 2022,
		"hoursPlayed": 130.5,
		"platinumed":  true,
		"rating":      10,
	})
	require.NoError(t, err)
	assert.Equal(t, Gaming, c)
}

func TestResolveSkipsCoincidentalKeyOverlap(t *testing.T) {
	fields := map[string]any{
		"teams":  []any{"not", "a", "string"},
		"author": "Nick Hornby",
		"pages":  247,
	}
	assert.Equal(t, Football, Infer(fields))

	c, err := Resolve(fields)
	require.NoError(t, err)
	assert.Equal(t, Books, c)
}

func TestResolveAcceptsDateValues(t *testing.T) {
	c, err := Resolve(map[string]any{
		"destination":   "Kyoto",
		"tripStartDate": time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
		"tripEndDate":   "2023-11-12",
		"budgetLevel":   "Medium",
	})
	require.NoError(t, err)
	assert.Equal(t, Travel, c)
}

func TestResolveReportsEveryCategory(t *testing.T) {
	_, err := Resolve(map[string]any{"creator": "x", "status": "Paused", "rating": 7})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolved))

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Len(t, unresolved.Issues, len(All()))
	assert.NotEmpty(t, unresolved.Issues[TVShows])
	assert.Contains(t, err.Error(), "tvshows")
}

func TestValidateRatingRanges(t *testing.T) {
	assert.NoError(t, Validate(Gaming, map[string]any{"platform": "PC", "developer": "Valve", "rating": 9}))
	assert.Error(t, Validate(Movies, map[string]any{"director": "Nolan", "rating": 9}))
	assert.Error(t, Validate(MotoGP, map[string]any{"gpName": "Mugello", "circuit": "Mugello", "category": "Moto4"}))

	_, err := Schema("cooking")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}
