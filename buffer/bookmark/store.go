// Package bookmark keeps named, annotatable offset markers for one
// buffer, sorted by offset.
//
// The store is an arena with a rebuilt index: bookmarks live in one
// slice that is re-sorted after every structural change, and the
// id-to-position map is rebuilt rather than maintained incrementally.
// Cheap at the expected scale (tens to low hundreds of entries) and
// immune to index-drift bugs.
package bookmark

import "sort"

// Bookmark is one offset marker. Ids are never reused.
type Bookmark struct {
	ID         int
	Offset     int
	Name       string
	Annotation string
}

// Store owns the bookmark collection for one buffer.
//
// NOT thread-safe. The owning buffer serializes access.
type Store struct {
	marks  []Bookmark  // sorted by offset, then id
	byID   map[int]int // id -> index into marks
	nextID int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[int]int)}
}

// Add inserts a bookmark at offset and returns its id.
func (s *Store) Add(offset int, name string) int {
	id := s.nextID
	s.nextID++
	s.marks = append(s.marks, Bookmark{ID: id, Offset: offset, Name: name})
	s.reindex()
	return id
}

// Remove deletes the bookmark id. Returns false when id is unknown.
func (s *Store) Remove(id int) bool {
	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	s.marks = append(s.marks[:idx], s.marks[idx+1:]...)
	s.reindex()
	return true
}

// Rename sets the bookmark's name. Returns false when id is unknown.
func (s *Store) Rename(id int, name string) bool {
	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	s.marks[idx].Name = name
	return true
}

// SetAnnotation sets the bookmark's annotation text. Returns false when
// id is unknown.
func (s *Store) SetAnnotation(id int, text string) bool {
	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	s.marks[idx].Annotation = text
	return true
}

// Get returns the bookmark id.
func (s *Store) Get(id int) (Bookmark, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Bookmark{}, false
	}
	return s.marks[idx], true
}

// AtOffset returns the first bookmark placed exactly at offset.
func (s *Store) AtOffset(offset int) (Bookmark, bool) {
	i := sort.Search(len(s.marks), func(i int) bool {
		return s.marks[i].Offset >= offset
	})
	if i < len(s.marks) && s.marks[i].Offset == offset {
		return s.marks[i], true
	}
	return Bookmark{}, false
}

// Has reports whether any bookmark sits exactly at offset.
func (s *Store) Has(offset int) bool {
	_, ok := s.AtOffset(offset)
	return ok
}

// All returns the bookmarks sorted by offset.
func (s *Store) All() []Bookmark {
	out := make([]Bookmark, len(s.marks))
	copy(out, s.marks)
	return out
}

// Count returns the number of bookmarks.
func (s *Store) Count() int {
	return len(s.marks)
}

// reindex re-sorts the arena and rebuilds the id lookup. Creation order
// breaks offset ties so AtOffset is deterministic.
func (s *Store) reindex() {
	sort.Slice(s.marks, func(i, j int) bool {
		if s.marks[i].Offset != s.marks[j].Offset {
			return s.marks[i].Offset < s.marks[j].Offset
		}
		return s.marks[i].ID < s.marks[j].ID
	})
	s.byID = make(map[int]int, len(s.marks))
	for i := range s.marks {
		s.byID[s.marks[i].ID] = i
	}
}
