package board

import "slices"

// Favorites is an ordered set of movie titles. The zero value is an empty
// set. Favorites values are immutable: Toggle and Remove return a new set,
// so older States stay valid after a transition.
type Favorites struct {
	titles []string
}

// Toggle returns a set with title added when absent, removed when present.
func (f Favorites) Toggle(title string) Favorites {
	if f.Has(title) {
		return f.Remove(title)
	}
	titles := make([]string, len(f.titles), len(f.titles)+1)
	copy(titles, f.titles)
	return Favorites{titles: append(titles, title)}
}

// Remove returns a set without title. Removing an absent title is a no-op
// and returns the set unchanged.
func (f Favorites) Remove(title string) Favorites {
	i := slices.Index(f.titles, title)
	if i < 0 {
		return f
	}
	titles := make([]string, 0, len(f.titles)-1)
	titles = append(titles, f.titles[:i]...)
	titles = append(titles, f.titles[i+1:]...)
	return Favorites{titles: titles}
}

// Has reports whether title is in the set.
func (f Favorites) Has(title string) bool {
	return slices.Contains(f.titles, title)
}

// Titles returns the titles in insertion order.
func (f Favorites) Titles() []string {
	return slices.Clone(f.titles)
}

// Len returns the number of favorites.
func (f Favorites) Len() int {
	return len(f.titles)
}
