// Package mmfile provides platform-specific helpers for memory-mapping
// input files. Loading a file into the edit engine copies the bytes
// anyway, so mapping is used purely to avoid a second read-path copy on
// large inputs; platforms without usable mmap fall back to ReadFile.
package mmfile
