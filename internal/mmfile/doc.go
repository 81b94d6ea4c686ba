// Package mmfile provides read-only access to input files, memory-mapped
// where the platform allows it.
package mmfile
