package bend

// Sink receives exported bytes. Hosts that want to persist somewhere
// other than a local path (a test fixture, an upload) implement it.
type Sink interface {
	// WriteBytes persists one complete byte image.
	WriteBytes(data []byte) error
}

// FileSink exports to a filesystem path through Export's atomic
// temp-write-sync-rename path.
type FileSink struct {
	Path string
	Opts ExportOptions
}

// WriteBytes writes data to the configured path atomically.
func (s *FileSink) WriteBytes(data []byte) error {
	return Export(s.Path, data, s.Opts)
}

// MemSink captures exported bytes in memory.
type MemSink struct {
	Buf []byte
}

// WriteBytes stores an independent copy of data.
func (s *MemSink) WriteBytes(data []byte) error {
	s.Buf = append(s.Buf[:0], data...)
	return nil
}
