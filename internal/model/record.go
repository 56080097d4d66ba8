package model

// Record is a single day's pushup count owned by a user. UserID is kept
// nullable in the schema: a relationship replace on the owning user may
// detach records, leaving them unowned until re-linked. Creation always
// requires an existing user, enforced at the service layer.
type Record struct {
	ID              uint  `json:"id" gorm:"primaryKey"`
	Date            Date  `json:"date" gorm:"not null"`
	NumberOfPushups int   `json:"numberOfPushups" gorm:"column:number_of_pushups;not null"`
	UserID          *uint `json:"user_id" gorm:"index"`
}

// TableName keeps the singular table name used by the schema.
func (Record) TableName() string {
	return "record"
}
