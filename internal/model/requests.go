package model

// RecordCreate is the accepted payload for creating or replacing a record.
// Pointer fields distinguish a missing field from a zero value so that
// required-ness can be validated before the service layer runs.
type RecordCreate struct {
	NumberOfPushups *int  `json:"numberOfPushups" validate:"required"`
	Date            *Date `json:"date" validate:"required"`
	User            *uint `json:"user" validate:"required"`
}

// UserCreate is the accepted payload for creating or replacing a user.
// HasRecords is a pointer so that null/absent (leave the relationship
// untouched) can be told apart from a provided empty list (clear all links).
type UserCreate struct {
	Email      string  `json:"email" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	HasRecords *[]uint `json:"hasRecords"`
}
