package model

import (
	"time"
)

type BoardInvite struct {
	InviteID  int       `gorm:"column:invite_id;primaryKey;autoIncrement"`
	BoardID   int       `gorm:"column:board_id;not null"`
	Token     string    `gorm:"column:token;type:varchar(255);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID;references:BoardID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (BoardInvite) TableName() string {
	return "board_invites"
}
