package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer"
)

// TestEnterEditAndTypeHex tests entering edit mode and typing a hex byte
func TestEnterEditAndTypeHex(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02, 0x03, 0x04})

	model := helper.GetModel()
	if model.editing {
		t.Fatal("Should not start in editing mode")
	}

	t.Log("Pressing 'i' to start editing")
	helper.SendKeyRune('i')

	model = helper.GetModel()
	if !model.editing {
		t.Fatal("Should be editing after 'i'")
	}

	t.Log("Typing 'f' 'f' to overwrite byte 0")
	helper.SendKeyRune('f')

	if got := helper.Working()[0]; got != 0xF1 {
		t.Errorf("High nibble write: got 0x%02X, want 0xF1", got)
	}
	if helper.Buffer().NibblePos() != buffer.NibbleLow {
		t.Error("Pending nibble should be low after first keystroke")
	}

	helper.SendKeyRune('f')

	if got := helper.Working()[0]; got != 0xFF {
		t.Errorf("Completed byte: got 0x%02X, want 0xFF", got)
	}
	if helper.Cursor() != 1 {
		t.Errorf("Cursor should advance to 1, got %d", helper.Cursor())
	}

	t.Log("Pressing Esc to stop editing")
	helper.SendKey(tea.KeyEsc)

	if helper.GetModel().editing {
		t.Error("Should not be editing after Esc")
	}

	t.Log("✓ Hex typing works correctly")
}

// TestNonHexKeysIgnoredWhileEditing tests that command keys don't fire
// while typing hex
func TestNonHexKeysIgnoredWhileEditing(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02, 0x03, 0x04})

	helper.SendKeyRune('i')

	t.Log("Pressing 'q' while editing (not a hex digit)")
	helper.SendKeyRune('q')

	model := helper.GetModel()
	if !model.editing {
		t.Error("'q' should not quit while editing")
	}
	if model.confirmQuit {
		t.Error("'q' should not open the quit dialog while editing")
	}
	if helper.Working()[0] != 0x01 {
		t.Error("'q' should not change any byte")
	}

	t.Log("✓ Non-hex keys are ignored while editing")
}

// TestASCIIColumnTyping tests typing text in the ASCII column
func TestASCIIColumnTyping(t *testing.T) {
	helper := NewTestHelper([]byte("hello"))

	t.Log("Switching to the ASCII column with Tab")
	helper.SendKey(tea.KeyTab)

	if helper.Buffer().EditMode() != buffer.EditASCII {
		t.Fatal("Tab should switch to the ASCII column")
	}

	helper.SendKeyRune('i')
	t.Log("Typing 'H' over byte 0")
	helper.SendKeyRune('H')

	if got := helper.Working()[0]; got != 'H' {
		t.Errorf("ASCII write: got %q, want 'H'", got)
	}
	if helper.Cursor() != 1 {
		t.Errorf("Cursor should advance to 1, got %d", helper.Cursor())
	}

	t.Log("Typing a space")
	helper.SendKey(tea.KeySpace)

	if got := helper.Working()[1]; got != ' ' {
		t.Errorf("Space write: got %q, want ' '", got)
	}

	t.Log("✓ ASCII column typing works correctly")
}

// TestInsertModeTypingGrowsBuffer tests nibble typing in insert mode
func TestInsertModeTypingGrowsBuffer(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02})

	t.Log("Toggling insert mode with Ctrl+O")
	helper.SendKeyString("ctrl+o")

	if helper.Buffer().WriteMode() != buffer.WriteInsert {
		t.Fatal("Ctrl+O should switch to insert mode")
	}

	helper.SendKeyRune('i')
	t.Log("Typing 'a' 'b' to splice a byte in at offset 0")
	helper.SendKeyRune('a')
	helper.SendKeyRune('b')

	working := helper.Working()
	if len(working) != 3 {
		t.Fatalf("Buffer should grow to 3 bytes, got %d", len(working))
	}
	if working[0] != 0xAB {
		t.Errorf("Inserted byte: got 0x%02X, want 0xAB", working[0])
	}
	if working[1] != 0x01 || working[2] != 0x02 {
		t.Errorf("Original bytes should shift right, got % X", working)
	}

	t.Log("✓ Insert mode typing grows the buffer")
}

// TestUndoRedoKeys tests 'u' and 'U' round-tripping an edit
func TestUndoRedoKeys(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02, 0x03, 0x04})

	helper.SendKeyRune('i')
	helper.SendKeyRune('f')
	helper.SendKeyRune('f')
	helper.SendKey(tea.KeyEsc)

	if helper.Working()[0] != 0xFF {
		t.Fatal("Setup failed: edit did not apply")
	}

	t.Log("Pressing 'u' to undo")
	helper.SendKeyRune('u')

	if got := helper.Working()[0]; got != 0x01 {
		t.Errorf("Undo should restore 0x01, got 0x%02X", got)
	}
	if !strings.Contains(helper.StatusMessage(), "Undo") {
		t.Errorf("Status should mention undo, got %q", helper.StatusMessage())
	}

	t.Log("Pressing 'U' to redo")
	helper.SendKeyRune('U')

	if got := helper.Working()[0]; got != 0xFF {
		t.Errorf("Redo should restore 0xFF, got 0x%02X", got)
	}

	t.Log("Pressing 'u' with nothing more to... redo stack present, undo again")
	helper.SendKeyRune('u')
	helper.SendKeyRune('u')

	if !strings.Contains(helper.StatusMessage(), "Nothing to undo") {
		t.Errorf("Status should say nothing to undo, got %q", helper.StatusMessage())
	}

	t.Log("✓ Undo/redo keys work correctly")
}

// TestNavigationKeys tests the cursor movement commands
func TestNavigationKeys(t *testing.T) {
	data := make([]byte, 64)
	helper := NewTestHelper(data)

	t.Log("Right arrow moves one byte")
	helper.SendKey(tea.KeyRight)
	if helper.Cursor() != 1 {
		t.Errorf("After right: cursor %d, want 1", helper.Cursor())
	}

	t.Log("Down arrow moves one row")
	helper.SendKey(tea.KeyDown)
	if helper.Cursor() != 17 {
		t.Errorf("After down: cursor %d, want 17", helper.Cursor())
	}

	t.Log("Home jumps to row start")
	helper.SendKey(tea.KeyHome)
	if helper.Cursor() != 16 {
		t.Errorf("After home: cursor %d, want 16", helper.Cursor())
	}

	t.Log("End jumps to row end")
	helper.SendKey(tea.KeyEnd)
	if helper.Cursor() != 31 {
		t.Errorf("After end: cursor %d, want 31", helper.Cursor())
	}

	t.Log("Ctrl+Home jumps to file start")
	helper.SendKeyString("ctrl+home")
	if helper.Cursor() != 0 {
		t.Errorf("After ctrl+home: cursor %d, want 0", helper.Cursor())
	}

	t.Log("Ctrl+End jumps to file end")
	helper.SendKeyString("ctrl+end")
	if helper.Cursor() != 63 {
		t.Errorf("After ctrl+end: cursor %d, want 63", helper.Cursor())
	}

	t.Log("Left arrow clamps at buffer end")
	helper.SendKey(tea.KeyLeft)
	if helper.Cursor() != 62 {
		t.Errorf("After left: cursor %d, want 62", helper.Cursor())
	}

	t.Log("✓ Navigation keys work correctly")
}

// TestSelectionKeys tests shift+arrow selection growth
func TestSelectionKeys(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	t.Log("Extending selection right twice")
	helper.SendKeyString("shift+right")
	helper.SendKeyString("shift+right")

	sel, ok := helper.Buffer().Selection()
	if !ok {
		t.Fatal("Selection should exist")
	}
	// Anchor byte plus the two extension targets
	if sel.Start != 0 || sel.End != 3 {
		t.Errorf("Selection [%d,%d), want [0,3)", sel.Start, sel.End)
	}
	if helper.Cursor() != 2 {
		t.Errorf("Cursor should follow the selection to 2, got %d", helper.Cursor())
	}

	t.Log("Plain movement clears the selection")
	helper.SendKey(tea.KeyRight)

	if _, ok := helper.Buffer().Selection(); ok {
		t.Error("Plain movement should drop the selection")
	}

	t.Log("Esc clears a fresh selection too")
	helper.SendKeyString("shift+right")
	helper.SendKey(tea.KeyEsc)

	if _, ok := helper.Buffer().Selection(); ok {
		t.Error("Esc should drop the selection")
	}

	t.Log("✓ Selection keys work correctly")
}

// TestGotoPrompt tests the 'g' offset prompt
func TestGotoPrompt(t *testing.T) {
	helper := NewTestHelper(make([]byte, 64))

	t.Log("Opening the goto prompt with 'g'")
	helper.SendKeyRune('g')

	model := helper.GetModel()
	if model.inputMode != GotoMode {
		t.Fatal("'g' should open the goto prompt")
	}

	t.Log("Typing 0x10 and pressing Enter")
	helper.SendKeyString("0x10")
	helper.SendKey(tea.KeyEnter)

	if helper.Cursor() != 16 {
		t.Errorf("Cursor should be at 16, got %d", helper.Cursor())
	}
	if helper.GetModel().inputMode != NormalMode {
		t.Error("Prompt should close after Enter")
	}

	t.Log("Bad offsets report an error and stay put")
	helper.SendKeyRune('g')
	helper.SendKeyString("zz")
	helper.SendKey(tea.KeyEnter)

	if helper.Cursor() != 16 {
		t.Errorf("Cursor should stay at 16, got %d", helper.Cursor())
	}
	if !strings.Contains(helper.StatusMessage(), "Bad offset") {
		t.Errorf("Status should report the bad offset, got %q", helper.StatusMessage())
	}

	t.Log("Esc cancels the prompt")
	helper.SendKeyRune('g')
	helper.SendKey(tea.KeyEsc)

	if helper.GetModel().inputMode != NormalMode {
		t.Error("Esc should close the prompt")
	}

	t.Log("✓ Goto prompt works correctly")
}

// TestHexSearchFlow tests '/' search plus n/N match navigation
func TestHexSearchFlow(t *testing.T) {
	data := []byte{0x00, 0xDE, 0xAD, 0x00, 0x00, 0xDE, 0xAD, 0x00}
	helper := NewTestHelper(data)

	t.Log("Searching for 'de ad'")
	helper.SendKeyRune('/')

	if helper.GetModel().inputMode != SearchHexMode {
		t.Fatal("'/' should open the hex search prompt")
	}

	helper.SendKeyString("de ad")
	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if !model.search.HasMatches() {
		t.Fatal("Search should find matches")
	}
	if model.search.MatchCount() != 2 {
		t.Fatalf("Expected 2 matches, got %d", model.search.MatchCount())
	}
	if helper.Cursor() != 1 {
		t.Errorf("Cursor should sit on the first match at 1, got %d", helper.Cursor())
	}

	t.Log("Pressing 'n' for the next match")
	helper.SendKeyRune('n')
	if helper.Cursor() != 5 {
		t.Errorf("Cursor should be at second match 5, got %d", helper.Cursor())
	}

	t.Log("Pressing 'n' again wraps to the first match")
	helper.SendKeyRune('n')
	if helper.Cursor() != 1 {
		t.Errorf("Cursor should wrap to 1, got %d", helper.Cursor())
	}

	t.Log("Pressing 'N' for the previous match")
	helper.SendKeyRune('N')
	if helper.Cursor() != 5 {
		t.Errorf("Cursor should step back to 5, got %d", helper.Cursor())
	}

	t.Log("Esc clears the finished search")
	helper.SendKey(tea.KeyEsc)
	if helper.GetModel().search.Executed() {
		t.Error("Esc should reset the search session")
	}

	t.Log("✓ Hex search flow works correctly")
}

// TestASCIISearchNoMatches tests the empty result path
func TestASCIISearchNoMatches(t *testing.T) {
	helper := NewTestHelper([]byte("hello world"))

	helper.SendKeyString("ctrl+f")
	if helper.GetModel().inputMode != SearchASCIIMode {
		t.Fatal("Ctrl+F should open the ASCII search prompt")
	}

	helper.SendKeyString("xyz")
	helper.SendKey(tea.KeyEnter)

	if helper.GetModel().search.HasMatches() {
		t.Error("Search should find nothing")
	}
	if !strings.Contains(helper.StatusMessage(), "No matches") {
		t.Errorf("Status should report no matches, got %q", helper.StatusMessage())
	}

	t.Log("✓ Empty search result reported correctly")
}

// TestReplaceAllFlow tests 'R' replacing every match
func TestReplaceAllFlow(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0x00, 0xDE, 0xAD}
	helper := NewTestHelper(data)

	helper.SendKeyRune('/')
	helper.SendKeyString("dead")
	helper.SendKey(tea.KeyEnter)

	if helper.GetModel().search.MatchCount() != 2 {
		t.Fatal("Setup failed: expected 2 matches")
	}

	t.Log("Pressing 'R' and entering the replacement")
	helper.SendKeyRune('R')

	if helper.GetModel().inputMode != ReplaceAllMode {
		t.Fatal("'R' should open the replace-all prompt")
	}

	helper.SendKeyString("beef")
	helper.SendKey(tea.KeyEnter)

	working := helper.Working()
	want := []byte{0xBE, 0xEF, 0x00, 0xBE, 0xEF}
	for i := range want {
		if working[i] != want[i] {
			t.Fatalf("Replace-all result % X, want % X", working, want)
		}
	}
	if !strings.Contains(helper.StatusMessage(), "Replaced 2") {
		t.Errorf("Status should report 2 replacements, got %q", helper.StatusMessage())
	}

	t.Log("Each replaced site undoes independently, newest first")
	helper.SendKeyRune('u')

	working = helper.Working()
	if working[3] != 0xDE || working[0] != 0xBE {
		t.Errorf("First undo should restore only the last site, got % X", working)
	}

	helper.SendKeyRune('u')

	working = helper.Working()
	if working[0] != 0xDE {
		t.Errorf("Second undo should restore the first site, got % X", working)
	}

	t.Log("✓ Replace-all flow works correctly")
}

// TestReplaceWithoutMatchGuard tests that 'r' without a current match
// reports instead of prompting
func TestReplaceWithoutMatchGuard(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3})

	helper.SendKeyRune('r')

	model := helper.GetModel()
	if model.inputMode != NormalMode {
		t.Error("'r' without a match should not open a prompt")
	}
	if !strings.Contains(helper.StatusMessage(), "No match") {
		t.Errorf("Status should explain there is no match, got %q", helper.StatusMessage())
	}

	t.Log("✓ Replace guard works correctly")
}

// TestSavePointCreateRestoreFlow tests the save point panel end to end
func TestSavePointCreateRestoreFlow(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02, 0x03, 0x04})

	// First edit, then capture it
	helper.SendKeyRune('i')
	helper.SendKeyRune('f')
	helper.SendKeyRune('f')
	helper.SendKey(tea.KeyEsc)

	t.Log("Opening the save point panel and creating a point")
	helper.SendKeyRune('s')

	if helper.GetModel().panel != PanelSavePoints {
		t.Fatal("'s' should open the save point panel")
	}

	helper.SendKeyRune('n')
	if helper.GetModel().inputMode != SavePointNameMode {
		t.Fatal("'n' should open the name prompt")
	}
	helper.SendKeyString("glitch one")
	helper.SendKey(tea.KeyEnter)

	points := helper.Buffer().SavePoints()
	if len(points) != 1 {
		t.Fatalf("Expected 1 save point, got %d", len(points))
	}
	if points[0].Name != "glitch one" {
		t.Errorf("Save point name %q, want %q", points[0].Name, "glitch one")
	}

	t.Log("Closing the panel and making further edits")
	helper.SendKey(tea.KeyEsc)
	helper.SendKeyRune('i')
	helper.SendKeyRune('a')
	helper.SendKeyRune('a')
	helper.SendKey(tea.KeyEsc)

	if helper.Working()[1] != 0xAA {
		t.Fatal("Setup failed: second edit did not apply")
	}

	t.Log("Restoring the save point from the panel")
	helper.SendKeyRune('s')
	helper.SendKey(tea.KeyEnter)

	working := helper.Working()
	if working[0] != 0xFF {
		t.Errorf("Captured edit should survive restore, got 0x%02X", working[0])
	}
	if working[1] != 0x02 {
		t.Errorf("Later edit should roll back, got 0x%02X", working[1])
	}
	if helper.GetModel().panel != PanelNone {
		t.Error("Restore should close the panel")
	}
	if !strings.Contains(helper.StatusMessage(), "Restored") {
		t.Errorf("Status should report the restore, got %q", helper.StatusMessage())
	}

	t.Log("✓ Save point create/restore flow works correctly")
}

// TestSavePointDeleteGuard tests the newest-only delete rule in the panel
func TestSavePointDeleteGuard(t *testing.T) {
	helper := NewTestHelper([]byte{0x01, 0x02, 0x03, 0x04})

	// Two save points with an edit between them
	helper.SendKeyRune('s')
	helper.SendKeyRune('n')
	helper.SendKey(tea.KeyEnter) // default name
	helper.SendKey(tea.KeyEsc)

	helper.SendKeyRune('i')
	helper.SendKeyRune('f')
	helper.SendKeyRune('f')
	helper.SendKey(tea.KeyEsc)

	helper.SendKeyRune('s')
	helper.SendKeyRune('n')
	helper.SendKey(tea.KeyEnter)

	if len(helper.Buffer().SavePoints()) != 2 {
		t.Fatal("Setup failed: expected 2 save points")
	}

	t.Log("Trying to delete the older point")
	helper.SendKey(tea.KeyUp) // move to the first point
	helper.SendKeyRune('d')

	if len(helper.Buffer().SavePoints()) != 2 {
		t.Error("Older save point must not be deletable")
	}
	if !strings.Contains(helper.StatusMessage(), "newest") {
		t.Errorf("Status should explain the rule, got %q", helper.StatusMessage())
	}

	t.Log("Deleting the newest point")
	helper.SendKey(tea.KeyDown)
	helper.SendKeyRune('d')

	if len(helper.Buffer().SavePoints()) != 1 {
		t.Error("Newest save point should be deletable")
	}

	t.Log("✓ Save point delete guard works correctly")
}

// TestBookmarkToggleAndPanel tests 'b' toggling and the 'B' panel
func TestBookmarkToggleAndPanel(t *testing.T) {
	helper := NewTestHelper(make([]byte, 32))

	t.Log("Adding a bookmark at the cursor")
	helper.SendKeyRune('b')

	if helper.GetModel().inputMode != BookmarkNameMode {
		t.Fatal("'b' should prompt for a name")
	}
	helper.SendKeyString("header")
	helper.SendKey(tea.KeyEnter)

	marks := helper.Buffer().Bookmarks()
	if marks.Count() != 1 {
		t.Fatalf("Expected 1 bookmark, got %d", marks.Count())
	}
	if !marks.Has(0) {
		t.Error("Bookmark should be at offset 0")
	}

	t.Log("Pressing 'b' again removes it")
	helper.SendKeyRune('b')

	if marks.Count() != 0 {
		t.Error("Second 'b' should remove the bookmark")
	}
	if !strings.Contains(helper.StatusMessage(), "removed") {
		t.Errorf("Status should report removal, got %q", helper.StatusMessage())
	}

	t.Log("Adding one at offset 16 and jumping via the panel")
	helper.SendKeyRune('g')
	helper.SendKeyString("16")
	helper.SendKey(tea.KeyEnter)
	helper.SendKeyRune('b')
	helper.SendKeyString("body")
	helper.SendKey(tea.KeyEnter)

	helper.SendKeyString("ctrl+home")

	helper.SendKeyRune('B')
	if helper.GetModel().panel != PanelBookmarks {
		t.Fatal("'B' should open the bookmark panel")
	}
	helper.SendKey(tea.KeyEnter)

	if helper.Cursor() != 16 {
		t.Errorf("Panel jump should land at 16, got %d", helper.Cursor())
	}
	if helper.GetModel().panel != PanelNone {
		t.Error("Jump should close the panel")
	}

	t.Log("✓ Bookmark toggle and panel work correctly")
}

// TestBookmarkAnnotation tests annotating a bookmark from the panel
func TestBookmarkAnnotation(t *testing.T) {
	helper := NewTestHelper(make([]byte, 8))

	helper.SendKeyRune('b')
	helper.SendKeyString("spot")
	helper.SendKey(tea.KeyEnter)

	t.Log("Opening the panel and annotating")
	helper.SendKeyRune('B')
	helper.SendKeyRune('a')

	if helper.GetModel().inputMode != BookmarkNoteMode {
		t.Fatal("'a' should open the annotation prompt")
	}

	helper.SendKeyString("palette bytes")
	helper.SendKey(tea.KeyEnter)

	marks := helper.Buffer().Bookmarks().All()
	if len(marks) != 1 {
		t.Fatal("Bookmark disappeared")
	}
	if marks[0].Annotation != "palette bytes" {
		t.Errorf("Annotation %q, want %q", marks[0].Annotation, "palette bytes")
	}

	t.Log("✓ Bookmark annotation works correctly")
}

// TestWriteModeToggleStatus tests Ctrl+O feedback
func TestWriteModeToggleStatus(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3})

	helper.SendKeyString("ctrl+o")

	if helper.Buffer().WriteMode() != buffer.WriteInsert {
		t.Error("Ctrl+O should switch to insert mode")
	}
	if !strings.Contains(helper.StatusMessage(), "insert") {
		t.Errorf("Status should name the new mode, got %q", helper.StatusMessage())
	}

	helper.SendKeyString("ctrl+o")

	if helper.Buffer().WriteMode() != buffer.WriteOverwrite {
		t.Error("Second Ctrl+O should switch back to overwrite")
	}

	t.Log("✓ Write mode toggle works correctly")
}

// TestDeleteKeyInsertModeOnly tests that Delete removes bytes only in
// insert mode
func TestDeleteKeyInsertModeOnly(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3, 4})

	t.Log("Delete in overwrite mode is a no-op")
	helper.SendKey(tea.KeyDelete)
	if len(helper.Working()) != 4 {
		t.Error("Overwrite-mode delete must not remove bytes")
	}

	t.Log("Delete in insert mode removes the byte at the cursor")
	helper.SendKeyString("ctrl+o")
	helper.SendKey(tea.KeyDelete)

	working := helper.Working()
	if len(working) != 3 {
		t.Fatalf("Expected 3 bytes after delete, got %d", len(working))
	}
	if working[0] != 2 {
		t.Errorf("Byte 0 should now be 2, got %d", working[0])
	}

	t.Log("Backspace in insert mode deletes leftwards")
	helper.SendKey(tea.KeyRight)
	helper.SendKey(tea.KeyBackspace)

	working = helper.Working()
	if len(working) != 2 {
		t.Fatalf("Expected 2 bytes after backspace, got %d", len(working))
	}
	if working[0] != 3 {
		t.Errorf("Byte 0 should now be 3, got %d", working[0])
	}

	t.Log("✓ Delete/backspace honor the write mode")
}

// TestConfirmQuitWhenDirty tests the quit guard on unsaved changes
func TestConfirmQuitWhenDirty(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3})

	helper.SendKeyRune('i')
	helper.SendKeyRune('f')
	helper.SendKeyRune('f')
	helper.SendKey(tea.KeyEsc)

	t.Log("Pressing 'q' with unsaved changes")
	helper.SendKeyRune('q')

	model := helper.GetModel()
	if !model.confirmQuit {
		t.Fatal("'q' on a dirty buffer should ask for confirmation")
	}

	t.Log("Pressing 'n' keeps the session")
	helper.SendKeyRune('n')

	model = helper.GetModel()
	if model.confirmQuit {
		t.Error("'n' should dismiss the dialog")
	}

	t.Log("Dialog blocks other keys while open")
	helper.SendKeyRune('q')
	helper.SendKeyRune('x')

	if !helper.GetModel().confirmQuit {
		t.Error("Unrelated keys should not dismiss the dialog")
	}

	t.Log("✓ Quit confirmation works correctly")
}

// TestHelpToggle tests the '?' overlay
func TestHelpToggle(t *testing.T) {
	helper := NewTestHelper([]byte{1, 2, 3})

	if helper.GetModel().showHelp {
		t.Fatal("Help should not be shown initially")
	}

	t.Log("Pressing '?' to show help")
	helper.SendKeyRune('?')

	if !helper.GetModel().showHelp {
		t.Error("Help should be shown after '?'")
	}

	t.Log("Other keys are ignored while help is up")
	helper.SendKeyRune('i')
	if helper.GetModel().editing {
		t.Error("Keys under the help overlay should not act")
	}

	t.Log("Esc dismisses help")
	helper.SendKey(tea.KeyEsc)
	if helper.GetModel().showHelp {
		t.Error("Help should be dismissed after Esc")
	}

	t.Log("✓ Help toggle works correctly")
}

// TestMouseWheelScrollsGrid tests wheel scrolling without cursor movement
func TestMouseWheelScrollsGrid(t *testing.T) {
	data := make([]byte, 16*100)
	helper := NewTestHelper(data)

	msg := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	updated, _ := helper.model.Update(msg)
	helper.model = updated.(Model)

	model := helper.GetModel()
	if model.scrollRow != 3 {
		t.Errorf("Wheel down should scroll 3 rows, got %d", model.scrollRow)
	}
	if helper.Cursor() != 0 {
		t.Error("Wheel scrolling must not move the cursor")
	}

	msg = tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	updated, _ = helper.model.Update(msg)
	helper.model = updated.(Model)

	if helper.GetModel().scrollRow != 0 {
		t.Errorf("Wheel up should scroll back to 0, got %d", helper.GetModel().scrollRow)
	}

	t.Log("✓ Mouse wheel scrolling works correctly")
}

// TestCursorScrollsIntoView tests that navigation keeps the cursor visible
func TestCursorScrollsIntoView(t *testing.T) {
	data := make([]byte, 16*100)
	helper := NewTestHelper(data)

	t.Log("Jumping to the last byte")
	helper.SendKeyString("ctrl+end")

	model := helper.GetModel()
	vis := model.visibleRows()
	if model.cursorRow() < model.scrollRow || model.cursorRow() >= model.scrollRow+vis {
		t.Errorf("Cursor row %d outside viewport [%d,%d)",
			model.cursorRow(), model.scrollRow, model.scrollRow+vis)
	}

	t.Log("Jumping back to the start")
	helper.SendKeyString("ctrl+home")

	model = helper.GetModel()
	if model.scrollRow != 0 {
		t.Errorf("Viewport should scroll back to 0, got %d", model.scrollRow)
	}

	t.Log("✓ Viewport follows the cursor")
}
