package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDetails(t *testing.T) {
	details, err := DecodeDetails(MotoGP, map[string]any{
		"title":    "Portuguese GP",
		"gpName":   "Grande Prémio de Portugal",
		"circuit":  "Portimão",
		"category": "MotoGP",
		"raceDate": "2024-03-24",
	})
	require.NoError(t, err)

	race, ok := details.(MotoGPRace)
	require.True(t, ok, "got %T", details)
	assert.Equal(t, "Portimão", race.Circuit)
	assert.Equal(t, "MotoGP", race.Class)
	assert.Equal(t, MotoGP, race.Category())
}

func TestDecodeDetailsRejectsUnknownCategory(t *testing.T) {
	_, err := DecodeDetails("cooking", map[string]any{})
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestDecodeDetailsReportsTypeMismatch(t *testing.T) {
	_, err := DecodeDetails(Books, map[string]any{"author": "A", "pages": "many"})
	assert.Error(t, err)
}

func TestBookReadingProgress(t *testing.T) {
	details, err := DecodeDetails(Books, map[string]any{"author": "Herbert", "pages": 412, "currentPage": 103})
	require.NoError(t, err)

	progress, ok := details.(Book).ReadingProgress()
	require.True(t, ok)
	assert.Equal(t, 25, progress)

	_, ok = Book{Pages: 412}.ReadingProgress()
	assert.False(t, ok)
	_, ok = Book{CurrentPage: 10}.ReadingProgress()
	assert.False(t, ok)
}
