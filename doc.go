// Package scn is fmt.Sscanf's dual: instead of formatting typed values
// into text, it extracts typed values out of text, directed by the same
// kind of format string, and hands back whatever of the source it did
// not consume. Scan and ScanValue cover the common cases; Compile checks
// a format against its argument kinds once and returns a Scanner that
// scans that format against many sources; Engine and its
// Options carry everything configurable, chiefly which locale a field
// carrying the "L" flag should scan numbers under.
package scn
