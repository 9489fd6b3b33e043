package services

import (
	"errors"
	"kanboard/model"

	"gorm.io/gorm"
)

// BoardRole is a caller's standing on a board, re-derived from the database on
// every call. No decision is cached across requests.
type BoardRole int

const (
	RoleNone BoardRole = iota
	RoleShared
	RoleOwner
)

// GetBoardRole returns the caller's role on a board. gorm.ErrRecordNotFound is
// returned when the board itself does not exist.
func GetBoardRole(db *gorm.DB, boardID int, userID uint) (BoardRole, error) {
	var board model.Board
	if err := db.Where("board_id = ?", boardID).First(&board).Error; err != nil {
		return RoleNone, err
	}
	if board.CreatedBy == int(userID) {
		return RoleOwner, nil
	}
	var share model.BoardShare
	err := db.Where("board_id = ? AND user_id = ?", boardID, userID).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}
	return RoleShared, nil
}

// ColumnBoard resolves a column and its owning board.
func ColumnBoard(db *gorm.DB, columnID int) (*model.Column, *model.Board, error) {
	var column model.Column
	if err := db.Where("column_id = ?", columnID).First(&column).Error; err != nil {
		return nil, nil, err
	}
	var board model.Board
	if err := db.Where("board_id = ?", column.BoardID).First(&board).Error; err != nil {
		return nil, nil, err
	}
	return &column, &board, nil
}

// TaskBoard walks task -> column -> board. Any missing link surfaces as
// gorm.ErrRecordNotFound.
func TaskBoard(db *gorm.DB, taskID int) (*model.Task, *model.Column, *model.Board, error) {
	var task model.Task
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, nil, nil, err
	}
	column, board, err := ColumnBoard(db, task.ColumnID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &task, column, board, nil
}

// SubtaskBoard walks subtask -> task -> column -> board.
func SubtaskBoard(db *gorm.DB, subtaskID int) (*model.Subtask, *model.Task, *model.Column, *model.Board, error) {
	var subtask model.Subtask
	if err := db.Where("subtask_id = ?", subtaskID).First(&subtask).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	task, column, board, err := TaskBoard(db, subtask.TaskID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return &subtask, task, column, board, nil
}
