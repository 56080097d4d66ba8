package model

// Detailed response shapes. Each relationship the API can inline is covered
// by an explicit struct rather than generic map building.

// RecordDetail is a record with its owning user resolved.
type RecordDetail struct {
	Record
	User *User `json:"user"`
}

// UserDetail is a user with its full list of owned records resolved.
type UserDetail struct {
	User
	HasRecords []Record `json:"hasRecords"`
}

// UserWithRecordIDs pairs a user with the ids of its owned records. Used by
// single-user fetches and the detailed paginated listing, which inline ids
// rather than full record objects.
type UserWithRecordIDs struct {
	User         User   `json:"user"`
	HasRecordIDs []uint `json:"hasRecords_ids"`
}
