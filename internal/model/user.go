package model

// User owns zero or more pushup records. Email carries no uniqueness
// constraint; duplicates are allowed.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:100;not null"`
	Email string `json:"email" gorm:"size:100;not null"`
}

// TableName keeps the singular table name used by the schema.
func (User) TableName() string {
	return "user"
}
