package models

// DuplicateUserResult is returned when a user with the same email already
// exists; InsertedID is always null in that case.
type DuplicateUserResult struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}
