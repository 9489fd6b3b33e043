package services

import (
	"kanboard/model"

	"gorm.io/gorm"
)

func GetUserByID(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBoardWithContents loads a board with its full column -> task -> subtask
// nesting and the share list.
func GetBoardWithContents(db *gorm.DB, boardID int) (*model.Board, error) {
	var board model.Board
	err := db.
		Preload("Columns.Tasks.Subtasks").
		Preload("Shares.User").
		Where("board_id = ?", boardID).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func GetColumnWithTasks(db *gorm.DB, columnID int) (*model.Column, error) {
	var column model.Column
	err := db.
		Preload("Tasks.Subtasks").
		Where("column_id = ?", columnID).
		First(&column).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}
