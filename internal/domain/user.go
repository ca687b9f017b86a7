package domain

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" db:"id" json:"id"`
	Email          string    `gorm:"uniqueIndex:ux_users_email;not null" db:"email" json:"email"`
	FirstName      string    `gorm:"not null" db:"first_name" json:"first_name"`
	LastName       string    `gorm:"not null" db:"last_name" json:"last_name"`
	PasswordDigest string    `gorm:"type:text;not null" db:"password_digest" json:"-"`
	CreatedAt      time.Time `gorm:"not null" db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" db:"updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
