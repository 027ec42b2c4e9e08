package schema

import (
	"time"
)

// User is an account that can sign in to the API. It is maintained by hand
// and not generated from a model document.
type User struct {
	ID           int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username     string     `json:"username" gorm:"column:username;type:varchar(50);not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"column:email;type:varchar(100);not null;uniqueIndex"`
	PasswordHash []byte     `json:"-" gorm:"column:password_hash;not null"`
	Role         string     `json:"role" gorm:"column:role;type:varchar(32);not null"`
	IsActive     *bool      `json:"isActive" gorm:"column:is_active;type:boolean;not null;default:true"`
	LastLoginAt  *time.Time `json:"lastLoginAt" gorm:"column:last_login_at;type:timestamp"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// TableName binds User to the "users" table.
func (User) TableName() string {
	return "users"
}
