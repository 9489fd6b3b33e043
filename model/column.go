package model

type Column struct {
	ColumnID    int    `gorm:"column:column_id;primaryKey;autoIncrement"`
	Title       string `gorm:"column:title;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	BoardID     int    `gorm:"column:board_id;not null"`

	// Relations
	Board Board  `gorm:"foreignKey:BoardID;references:BoardID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ColumnID;references:ColumnID"`
}

func (Column) TableName() string {
	return "columns"
}
