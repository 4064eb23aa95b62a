package dedupe

// Index holds the duplicate-check state for one run: titles from the
// lookback window plus titles and event keys accepted earlier in the same
// run. Accumulation guards forward only; earlier entries are never
// re-checked against later ones.
type Index struct {
	titles    []titleEntry
	eventKeys map[string]struct{}
}

type titleEntry struct {
	tokens  map[string]struct{}
	bigrams map[string]struct{}
}

func NewIndex() *Index {
	return &Index{eventKeys: make(map[string]struct{})}
}

// AddTitle registers a title for near-duplicate checks.
func (ix *Index) AddTitle(title string) {
	tokens := Tokens(title)
	if len(tokens) == 0 {
		return
	}
	ix.titles = append(ix.titles, titleEntry{
		tokens:  tokenSet(tokens),
		bigrams: bigramSet(tokens),
	})
}

// AddEventKeys registers sports event keys for same-event checks.
func (ix *Index) AddEventKeys(keys []string) {
	for _, k := range keys {
		ix.eventKeys[k] = struct{}{}
	}
}

// MatchesTitle reports whether the title is a near-duplicate of any
// registered title.
func (ix *Index) MatchesTitle(title string) bool {
	tokens := Tokens(title)
	set := tokenSet(tokens)
	if len(set) == 0 {
		return false
	}
	bigrams := bigramSet(tokens)

	for _, e := range ix.titles {
		if similarSets(set, bigrams, e.tokens, e.bigrams) {
			return true
		}
	}
	return false
}

// MatchesEvent reports whether any key intersects the registered event keys.
func (ix *Index) MatchesEvent(keys []string) bool {
	for _, k := range keys {
		if _, ok := ix.eventKeys[k]; ok {
			return true
		}
	}
	return false
}
