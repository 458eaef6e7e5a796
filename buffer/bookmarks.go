package buffer

import "github.com/joshuapare/bendkit/buffer/bookmark"

// AddBookmark places a named marker at offset and returns its id.
// Bookmark offsets are not adjusted by structural edits; that is the
// host's call to make.
func (b *Buffer) AddBookmark(offset int, name string) int {
	return b.bookmarks.Add(offset, name)
}

// RemoveBookmark deletes a bookmark. Returns false for unknown ids.
func (b *Buffer) RemoveBookmark(id int) bool {
	return b.bookmarks.Remove(id)
}

// Bookmarks exposes the bookmark store for listing, offset lookup,
// rename, and annotation.
func (b *Buffer) Bookmarks() *bookmark.Store {
	return b.bookmarks
}
