package model

import (
	"time"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username       string    `gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
