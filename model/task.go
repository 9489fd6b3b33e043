package model

import (
	"time"
)

type Task struct {
	TaskID      int       `gorm:"column:task_id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	Status      string    `gorm:"column:status;type:varchar(255)"`
	ColumnID    int       `gorm:"column:column_id;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Column   Column    `gorm:"foreignKey:ColumnID;references:ColumnID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Subtasks []Subtask `gorm:"foreignKey:TaskID;references:TaskID"`
}

func (Task) TableName() string {
	return "tasks"
}
