package models

// Conflict is an undirected exclusivity edge between two interventions,
// stored once per unordered pair in canonical AId < BId order.
type Conflict struct {
	Id           int64
	AId          int64
	BId          int64
	ConflictType string
	Reason       string
}

// ConflictResult is one conflict pair reported for a candidate set. The
// resolver is advisory: it never removes items, the caller decides which side
// to drop.
type ConflictResult struct {
	AId          int64
	BId          int64
	ConflictType string
	Reason       string
}
