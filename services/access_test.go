package services

import (
	"fmt"
	"kanboard/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.BoardShare{},
		&model.BoardInvite{},
		&model.Column{},
		&model.Task{},
		&model.Subtask{},
	))
	return db
}

type fixture struct {
	owner   model.User
	shared  model.User
	outside model.User
	board   model.Board
	column  model.Column
	task    model.Task
	subtask model.Subtask
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		owner:   model.User{Username: "alice", Email: "alice@example.com", HashedPassword: "x"},
		shared:  model.User{Username: "bob", Email: "bob@example.com", HashedPassword: "x"},
		outside: model.User{Username: "carol", Email: "carol@example.com", HashedPassword: "x"},
	}
	require.NoError(t, db.Create(&f.owner).Error)
	require.NoError(t, db.Create(&f.shared).Error)
	require.NoError(t, db.Create(&f.outside).Error)

	f.board = model.Board{Title: "Sprint 1", CreatedBy: f.owner.UserID}
	require.NoError(t, db.Create(&f.board).Error)
	require.NoError(t, db.Create(&model.BoardShare{BoardID: f.board.BoardID, UserID: f.shared.UserID}).Error)

	f.column = model.Column{Title: "Todo", BoardID: f.board.BoardID}
	require.NoError(t, db.Create(&f.column).Error)
	f.task = model.Task{Title: "Write tests", ColumnID: f.column.ColumnID}
	require.NoError(t, db.Create(&f.task).Error)
	f.subtask = model.Subtask{Title: "First case", TaskID: f.task.TaskID}
	require.NoError(t, db.Create(&f.subtask).Error)
	return f
}

func TestGetBoardRole(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	role, err := GetBoardRole(db, f.board.BoardID, uint(f.owner.UserID))
	require.NoError(t, err)
	require.Equal(t, RoleOwner, role)

	role, err = GetBoardRole(db, f.board.BoardID, uint(f.shared.UserID))
	require.NoError(t, err)
	require.Equal(t, RoleShared, role)

	role, err = GetBoardRole(db, f.board.BoardID, uint(f.outside.UserID))
	require.NoError(t, err)
	require.Equal(t, RoleNone, role)

	_, err = GetBoardRole(db, 99999, uint(f.owner.UserID))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskBoardChain(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	task, column, board, err := TaskBoard(db, f.task.TaskID)
	require.NoError(t, err)
	require.Equal(t, f.task.TaskID, task.TaskID)
	require.Equal(t, f.column.ColumnID, column.ColumnID)
	require.Equal(t, f.owner.UserID, board.CreatedBy)

	_, _, _, err = TaskBoard(db, 99999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskBoardMissingColumn(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, db.Where("column_id = ?", f.column.ColumnID).Delete(&model.Column{}).Error)

	_, _, _, err := TaskBoard(db, f.task.TaskID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubtaskBoardChain(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	subtask, task, column, board, err := SubtaskBoard(db, f.subtask.SubtaskID)
	require.NoError(t, err)
	require.Equal(t, f.subtask.SubtaskID, subtask.SubtaskID)
	require.Equal(t, f.task.TaskID, task.TaskID)
	require.Equal(t, f.column.ColumnID, column.ColumnID)
	require.Equal(t, f.board.BoardID, board.BoardID)

	_, _, _, _, err = SubtaskBoard(db, 99999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetBoardWithContents(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	board, err := GetBoardWithContents(db, f.board.BoardID)
	require.NoError(t, err)
	require.Len(t, board.Columns, 1)
	require.Len(t, board.Columns[0].Tasks, 1)
	require.Len(t, board.Columns[0].Tasks[0].Subtasks, 1)
	require.Len(t, board.Shares, 1)
	require.Equal(t, "bob", board.Shares[0].User.Username)
}
