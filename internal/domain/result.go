package domain

// Store acknowledgment shapes returned verbatim by the write endpoints.
// Field names follow the wire contract the frontend already depends on.

// InsertResult acknowledges an insert. Message is set only when the
// insert was rejected (duplicate registration).
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

// UpdateResult acknowledges an update. UpsertedID is set when an upsert
// created a new record instead of matching an existing one.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId,omitempty"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
