package models

// Task and user documents are stored as-is (bson.M); the only wire contracts
// this service owns are the mutation results below. Field casing matches what
// existing clients already parse.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
