// Package nvstore provides fixed-capacity containers — a circular queue and a
// linear vector — mapped directly onto a byte-addressable persistent memory
// region (a file, memory-mapped or buffered, or a plain in-memory buffer).
//
// There is no serialization step: every operation reads and writes the backing
// bytes in place, so container contents and bookkeeping survive a restart as
// long as the region itself does. A magic signature at the start of each
// storage block distinguishes first use (the header is initialized) from a
// previously persisted container (prior contents are reused unchanged).
//
// The library is organised into several files for clarity:
//
//	options.go     – region configuration struct & defaults
//	region.go      – memory / file backed byte regions
//	flush_close.go – flush & close helpers for file regions
//	layout.go      – storage block geometry & offset planning
//	vector.go      – persistent fixed-capacity vector
//	queue.go       – persistent fixed-capacity circular queue
//	typed.go       – generic typed wrappers & element codecs
//	manifest.go    – sidecar placement manifest (geometry verification)
//	stats.go       – lightweight per-container stats
//
// See the README for usage examples.
package nvstore
