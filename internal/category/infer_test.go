package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   Category
	}{
		{name: "football", fields: map[string]any{"teams": "Benfica vs Porto"}, want: Football},
		{name: "motogp", fields: map[string]any{"gpName": "Portimão"}, want: MotoGP},
		{name: "gaming needs both keys", fields: map[string]any{"platform": "PS5", "developer": "FromSoftware"}, want: Gaming},
		{name: "platform alone is not gaming", fields: map[string]any{"platform": "HBO", "creator": "Vince Gilligan"}, want: TVShows},
		{name: "movies", fields: map[string]any{"director": "Villeneuve"}, want: Movies},
		{name: "books", fields: map[string]any{"author": "Herbert"}, want: Books},
		{name: "travel", fields: map[string]any{"destination": "Kyoto"}, want: Travel},
		{name: "earlier predicate wins", fields: map[string]any{"author": "x", "teams": "y"}, want: Football},
		{name: "nil value still counts", fields: map[string]any{"director": nil}, want: Movies},
		{name: "default", fields: map[string]any{"title": "Untitled"}, want: Default},
		{name: "empty", fields: nil, want: Default},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Infer(tc.fields))
		})
	}
}

func TestInferDependsOnlyOnKeySet(t *testing.T) {
	a := map[string]any{"creator": "A", "seasons": 3}
	b := map[string]any{"creator": 42, "seasons": "many"}

	assert.Equal(t, Infer(a), Infer(b))
	assert.Equal(t, Infer(a), InferKeys([]string{"seasons", "creator"}))
}
