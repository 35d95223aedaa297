// Package models is the authoritative shape of every entity in the
// faculty directory and its relationships. Definitions are pure data;
// the Validate methods enforce the write-time invariants the query
// layer checks before issuing a mutation. Reads stay tolerant: rows
// are scanned column by column, so fields the remote store adds later
// are ignored.
package models

// Semester values used on teaching assignments.
const (
	SemesterFall   = "Fall"
	SemesterSpring = "Spring"
	SemesterSummer = "Summer"
)
