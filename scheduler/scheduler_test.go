package scheduler

import (
	"fmt"
	"kanboard/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPurgeExpiredInvites(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Board{}, &model.BoardInvite{}))

	owner := model.User{Username: "alice", Email: "alice@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(&owner).Error)
	board := model.Board{Title: "Board", CreatedBy: owner.UserID}
	require.NoError(t, db.Create(&board).Error)

	stale := model.BoardInvite{BoardID: board.BoardID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour)}
	fresh := model.BoardInvite{BoardID: board.BoardID, Token: "fresh", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)

	PurgeExpiredInvites(db)

	var tokens []string
	require.NoError(t, db.Model(&model.BoardInvite{}).Pluck("token", &tokens).Error)
	assert.Equal(t, []string{"fresh"}, tokens)
}
