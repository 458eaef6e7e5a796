package savepoint

import "time"

// ByteChange is one byte that differs between two checkpoint states.
type ByteChange struct {
	Offset int
	Old    byte
	New    byte
}

// SavePoint is a named snapshot. Diff holds the changes from the
// previous checkpoint (or from the base state for the first entry).
// Returned SavePoints share diff storage with the manager; treat Diff
// as read-only.
type SavePoint struct {
	ID        int
	Name      string
	CreatedAt time.Time
	Diff      []ByteChange
	Length    int
}

// Manager owns the save-point chain for one buffer.
//
// NOT thread-safe. The owning buffer serializes access.
type Manager struct {
	base   []byte // reconstruction origin for Restore
	last   []byte // newest checkpoint state, diff basis for the next Create
	chain  []SavePoint
	nextID int
	now    func() time.Time
}

// NewManager creates a Manager whose chain diffs start from base.
// The bytes are copied; the caller keeps ownership of the slice.
func NewManager(base []byte) *Manager {
	m := &Manager{now: time.Now}
	m.reset(base)
	return m
}

func (m *Manager) reset(base []byte) {
	m.base = append([]byte(nil), base...)
	m.last = append([]byte(nil), base...)
	m.chain = nil
}

// Create appends a save point capturing the difference between the
// previous checkpoint and current, then makes current the new
// checkpoint basis. Returns the save point's id. Ids increase
// monotonically and are never reused, even across ClearAll.
func (m *Manager) Create(name string, current []byte) int {
	n := len(m.last)
	if len(current) < n {
		n = len(current)
	}
	var diff []ByteChange
	for i := 0; i < n; i++ {
		if m.last[i] != current[i] {
			diff = append(diff, ByteChange{Offset: i, Old: m.last[i], New: current[i]})
		}
	}

	id := m.nextID
	m.nextID++
	m.chain = append(m.chain, SavePoint{
		ID:        id,
		Name:      name,
		CreatedAt: m.now(),
		Diff:      diff,
		Length:    len(current),
	})
	m.last = append(m.last[:0], current...)
	return id
}

// Restore reconstructs the working state as of the save point id by
// replaying every diff from the base state in chain order, up to and
// including id. ok is false when id is unknown. The returned slice is
// freshly allocated.
func (m *Manager) Restore(id int) (data []byte, ok bool) {
	idx := m.index(id)
	if idx < 0 {
		return nil, false
	}
	out := append([]byte(nil), m.base...)
	for _, sp := range m.chain[:idx+1] {
		for _, ch := range sp.Diff {
			if ch.Offset < len(out) {
				out[ch.Offset] = ch.New
			}
		}
	}
	return out, true
}

// CanDelete reports whether id may be deleted. Only the newest (leaf)
// save point qualifies; removing an interior entry would invalidate the
// diff basis of everything after it.
func (m *Manager) CanDelete(id int) bool {
	n := len(m.chain)
	return n > 0 && m.chain[n-1].ID == id
}

// Delete removes the leaf save point and rewinds the checkpoint basis
// so the manager behaves as if the save point had never been created.
// Returns false for unknown or non-leaf ids.
func (m *Manager) Delete(id int) bool {
	if !m.CanDelete(id) {
		return false
	}
	leaf := m.chain[len(m.chain)-1]
	for _, ch := range leaf.Diff {
		if ch.Offset < len(m.last) {
			m.last[ch.Offset] = ch.Old
		}
	}
	m.chain = m.chain[:len(m.chain)-1]
	return true
}

// Rename sets the name of the save point id. Returns false when id is
// unknown.
func (m *Manager) Rename(id int, name string) bool {
	idx := m.index(id)
	if idx < 0 {
		return false
	}
	m.chain[idx].Name = name
	return true
}

// ClearAll drops the whole chain and rebases future diffs on base.
// Must be called whenever the buffer length changes: absolute offsets
// in existing diffs would silently point at the wrong bytes.
func (m *Manager) ClearAll(base []byte) {
	m.reset(base)
}

// All returns the chain in creation order.
func (m *Manager) All() []SavePoint {
	out := make([]SavePoint, len(m.chain))
	copy(out, m.chain)
	return out
}

// Count returns the number of save points in the chain.
func (m *Manager) Count() int {
	return len(m.chain)
}

func (m *Manager) index(id int) int {
	for i := range m.chain {
		if m.chain[i].ID == id {
			return i
		}
	}
	return -1
}
