package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(" TVShows ")
	require.NoError(t, err)
	assert.Equal(t, TVShows, c)

	_, err = Parse("cooking")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestAllIsOrderedCopy(t *testing.T) {
	all := All()
	assert.Equal(t, []Category{Football, MotoGP, Gaming, Movies, TVShows, Books, Travel}, all)

	all[0] = "mutated"
	assert.Equal(t, Football, All()[0])
}

func TestEmoji(t *testing.T) {
	for _, c := range All() {
		assert.NotEmpty(t, c.Emoji(), c)
	}
	assert.Equal(t, "📚", Books.Emoji())
	assert.Empty(t, Category("cooking").Emoji())
}
