package model

// User represents the user model in the database.
// Password holds the bcrypt hash; the plaintext is never persisted.
type User struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string `json:"username" gorm:"size:64;not null;uniqueIndex:uk_username"`
	Email     string `json:"email" gorm:"size:128;not null;uniqueIndex:uk_email"`
	Password  string `json:"-" gorm:"size:255;not null"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for GORM.
func (u *User) TableName() string {
	return "users"
}
