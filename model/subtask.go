package model

type Subtask struct {
	SubtaskID   int    `gorm:"column:subtask_id;primaryKey;autoIncrement"`
	Title       string `gorm:"column:title;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	IsDone      bool   `gorm:"column:is_done;default:false;not null"`
	TaskID      int    `gorm:"column:task_id;not null"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Subtask) TableName() string {
	return "subtasks"
}
