// Package hash provides the checksum used to protect Cayley table snapshots.
package hash
