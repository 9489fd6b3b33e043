package model

import (
	"time"
)

type BoardShare struct {
	ShareID int       `gorm:"column:share_id;primaryKey;autoIncrement"`
	BoardID int       `gorm:"column:board_id;not null;uniqueIndex:idx_board_share"`
	UserID  int       `gorm:"column:user_id;not null;uniqueIndex:idx_board_share"`
	AddedAt time.Time `gorm:"column:added_at;autoCreateTime"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID;references:BoardID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	User  User  `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (BoardShare) TableName() string {
	return "board_shares"
}
