package category

type predicate struct {
	category Category
	keys     []string
}

// predicates are evaluated in order; the first whose keys are all present wins.
var predicates = []predicate{
	{category: Football, keys: []string{"teams"}},
	{category: MotoGP, keys: []string{"gpName"}},
	{category: Gaming, keys: []string{"platform", "developer"}},
	{category: Movies, keys: []string{"director"}},
	{category: TVShows, keys: []string{"creator"}},
	{category: Books, keys: []string{"author"}},
	{category: Travel, keys: []string{"destination"}},
}

// Infer determines the category of decoded metadata from its key set alone.
// Values are never inspected, so identical key sets always produce the same
// result. When nothing matches, Default is returned.
func Infer(fields map[string]any) Category {
	return match(func(key string) bool {
		_, ok := fields[key]
		return ok
	})
}

// InferKeys is Infer over a plain key list.
func InferKeys(keys []string) Category {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return match(func(key string) bool {
		_, ok := set[key]
		return ok
	})
}

func match(has func(string) bool) Category {
	for _, p := range predicates {
		if matchesAll(p.keys, has) {
			return p.category
		}
	}
	return Default
}

func matchesAll(keys []string, has func(string) bool) bool {
	for _, key := range keys {
		if !has(key) {
			return false
		}
	}
	return true
}
