package acceptance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// TestEditing_NibbleBurstCoalesces tests that a burst of hex keystrokes
// collapses into a single undo step while a pause starts a new one.
func TestEditing_NibbleBurstCoalesces(t *testing.T) {
	clock := newFakeClock()
	buf := bend.OpenWithOptions(make([]byte, 8), clockedOptions(clock))

	// Four keystrokes writing two bytes, no pause between them
	require.False(t, buf.EditNibble(0xA), "high nibble should wait for its partner")
	require.True(t, buf.EditNibble(0xB), "low nibble should complete the byte")
	require.False(t, buf.EditNibble(0xC))
	require.True(t, buf.EditNibble(0xD))

	assert.Equal(t, byte(0xAB), buf.Working()[0])
	assert.Equal(t, byte(0xCD), buf.Working()[1])
	assert.Equal(t, 1, buf.UndoCount(), "burst should coalesce into one entry")

	// A pause longer than the window starts a fresh entry
	clock.Advance(time.Second)
	require.False(t, buf.EditNibble(0xE))
	require.True(t, buf.EditNibble(0xF))

	assert.Equal(t, 2, buf.UndoCount())

	// One undo rolls back only the second burst
	require.True(t, buf.Undo())
	assert.Equal(t, byte(0x00), buf.Working()[2])
	assert.Equal(t, byte(0xAB), buf.Working()[0])

	// The next undo clears the first burst too
	require.True(t, buf.Undo())
	assert.Equal(t, buf.Original(), buf.Working())
	assert.False(t, buf.CanUndo())
}

// TestEditing_UndoRedoInverse tests that undo walks back through a mixed
// editing session state by state, and redo walks it forward again.
func TestEditing_UndoRedoInverse(t *testing.T) {
	clock := newFakeClock()
	buf := bend.OpenWithOptions([]byte{1, 2, 3, 4, 5, 6, 7, 8}, clockedOptions(clock))

	states := [][]byte{snapshot(buf)}
	apply := func(f func()) {
		// Space edits apart so none coalesce
		clock.Advance(time.Second)
		f()
		states = append(states, snapshot(buf))
	}

	apply(func() { buf.EditByte(0, 0xFF) })
	apply(func() { buf.EditBytes(2, []byte{0xAA, 0xBB}) })
	apply(func() { buf.InsertBytes(4, []byte{0x11, 0x22}) })
	apply(func() { buf.DeleteBytes(0, 2) })

	require.Equal(t, len(states)-1, buf.UndoCount())

	// Walk all the way back
	for i := len(states) - 2; i >= 0; i-- {
		require.True(t, buf.Undo(), "undo to state %d", i)
		assert.Equal(t, states[i], buf.Working(), "state %d after undo", i)
	}
	assert.False(t, buf.CanUndo())
	assert.Equal(t, buf.Original(), buf.Working())

	// And all the way forward again
	for i := 1; i < len(states); i++ {
		require.True(t, buf.Redo(), "redo to state %d", i)
		assert.Equal(t, states[i], buf.Working(), "state %d after redo", i)
	}
	assert.False(t, buf.CanRedo())
}

// TestEditing_NewEditClearsRedo tests the linear-history rule.
func TestEditing_NewEditClearsRedo(t *testing.T) {
	buf := bend.Open([]byte{1, 2, 3})

	buf.EditByte(0, 0xFF)
	require.True(t, buf.Undo())
	require.True(t, buf.CanRedo())

	buf.EditByte(1, 0xEE)
	assert.False(t, buf.CanRedo(), "a fresh edit should discard the redo branch")
}

// TestEditing_InsertTypingGrowsBuffer tests hex typing in insert mode.
func TestEditing_InsertTypingGrowsBuffer(t *testing.T) {
	buf := bend.Open([]byte{0x99})
	buf.ToggleWriteMode()
	require.Equal(t, buffer.WriteInsert, buf.WriteMode())

	// High keystroke splices a half-typed byte; low completes it in place
	require.False(t, buf.EditNibbleWithMode(0xA))
	require.Equal(t, 2, buf.Len())
	require.Equal(t, byte(0xA0), buf.Working()[0])

	require.True(t, buf.EditNibbleWithMode(0xB))
	assert.Equal(t, []byte{0xAB, 0x99}, buf.Working())

	// ASCII typing splices too
	require.True(t, buf.EditASCIIWithMode('!'))
	assert.Equal(t, []byte{0xAB, '!', 0x99}, buf.Working())
}

// TestEditing_BackspaceAndDeleteRules tests the mode-dependent key rules.
func TestEditing_BackspaceAndDeleteRules(t *testing.T) {
	buf := bend.Open([]byte{1, 2, 3, 4})

	// Overwrite: delete is a no-op, backspace only moves
	buf.SetCursor(2)
	buf.HandleDelete()
	assert.Equal(t, 4, buf.Len())
	buf.HandleBackspace()
	assert.Equal(t, 1, buf.Cursor())
	assert.Equal(t, 4, buf.Len())

	// Insert: delete removes at the cursor, backspace removes to the left
	buf.ToggleWriteMode()
	buf.HandleDelete()
	assert.Equal(t, []byte{1, 3, 4}, buf.Working())
	buf.SetCursor(2)
	buf.HandleBackspace()
	assert.Equal(t, []byte{1, 4}, buf.Working())
	assert.Equal(t, 1, buf.Cursor())
}

// TestEditing_GenerationTracksChanges tests the staleness counter: value
// and structural edits bump it, no-op writes don't.
func TestEditing_GenerationTracksChanges(t *testing.T) {
	buf := bend.Open([]byte{5, 5, 5})
	gen := buf.Generation()

	// Writing the value already there is not a change
	buf.EditByte(0, 5)
	assert.Equal(t, gen, buf.Generation())
	assert.False(t, buf.IsModified())

	buf.EditByte(0, 6)
	assert.Equal(t, gen+1, buf.Generation())
	assert.True(t, buf.IsModified())

	buf.InsertBytes(0, []byte{9})
	assert.Equal(t, gen+2, buf.Generation())

	// Undo is a change too
	require.True(t, buf.Undo())
	assert.Equal(t, gen+3, buf.Generation())
}

// TestEditing_LengthChangeFlag tests the host resync flag around
// structural edits and their undo.
func TestEditing_LengthChangeFlag(t *testing.T) {
	buf := bend.Open([]byte{1, 2, 3})

	buf.EditByte(0, 9)
	assert.False(t, buf.ConsumeLengthChanged(), "value edits don't change length")

	buf.InsertBytes(1, []byte{7})
	assert.True(t, buf.ConsumeLengthChanged())
	assert.False(t, buf.ConsumeLengthChanged(), "flag is consumed on read")

	require.True(t, buf.Undo())
	assert.True(t, buf.ConsumeLengthChanged(), "undoing an insert changes length")
}
