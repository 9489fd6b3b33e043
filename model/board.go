package model

import (
	"time"
)

type Board struct {
	BoardID     int       `gorm:"column:board_id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedBy   int       `gorm:"column:create_by;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Owner   User         `gorm:"foreignKey:CreatedBy;references:UserID;constraint:OnUpdate:CASCADE"`
	Columns []Column     `gorm:"foreignKey:BoardID;references:BoardID"`
	Shares  []BoardShare `gorm:"foreignKey:BoardID;references:BoardID"`
}

func (Board) TableName() string {
	return "boards"
}
