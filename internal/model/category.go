package model

// Keyword maps a case-sensitive subject fragment to a category name.
type Keyword struct {
	Keyword  string
	Category string
}

// KeywordMap is an ordered list of keywords. Earlier entries win when a
// subject contains more than one keyword.
type KeywordMap []Keyword

// Set adds a keyword or replaces the category of an existing one in place.
func (m *KeywordMap) Set(keyword, category string) {
	for i := range *m {
		if (*m)[i].Keyword == keyword {
			(*m)[i].Category = category
			return
		}
	}
	*m = append(*m, Keyword{Keyword: keyword, Category: category})
}

// Lookup returns the category registered for keyword.
func (m KeywordMap) Lookup(keyword string) (string, bool) {
	for _, k := range m {
		if k.Keyword == keyword {
			return k.Category, true
		}
	}
	return "", false
}
