package column

import (
	"bytes"
	"encoding/json"
	"fmt"
	"kanboard/controller/auth"
	"kanboard/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupColumnTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.BoardShare{},
		&model.Column{},
		&model.Task{},
		&model.Subtask{},
	))

	router := gin.New()
	ColumnController(router, db)
	CreateColumnController(router, db)
	UpdateColumnController(router, db)
	DeleteColumnController(router, db)
	return router, db
}

func createUser(t *testing.T, db *gorm.DB, username string) (model.User, string) {
	t.Helper()
	user := model.User{Username: username, Email: username + "@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.CreateAccessToken(&user)
	require.NoError(t, err)
	return user, token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedBoard(t *testing.T, db *gorm.DB) (ownerToken, sharedToken, outsideToken string, board model.Board) {
	t.Helper()
	owner, ownerToken := createUser(t, db, "alice")
	shared, sharedToken := createUser(t, db, "bob")
	_, outsideToken = createUser(t, db, "carol")
	board = model.Board{Title: "Board", CreatedBy: owner.UserID}
	require.NoError(t, db.Create(&board).Error)
	require.NoError(t, db.Create(&model.BoardShare{BoardID: board.BoardID, UserID: shared.UserID}).Error)
	return ownerToken, sharedToken, outsideToken, board
}

func TestCreateColumnSharedUserAllowed(t *testing.T) {
	router, db := setupColumnTest(t)
	_, sharedToken, outsideToken, board := seedBoard(t, db)

	w := doJSON(router, http.MethodPost, "/columns/create", sharedToken, gin.H{
		"board_id": board.BoardID, "title": "Todo",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/columns/create", outsideToken, gin.H{
		"board_id": board.BoardID, "title": "Sneaky",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/columns/create", sharedToken, gin.H{
		"board_id": 99999, "title": "Nowhere",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetColumnsByBoard(t *testing.T) {
	router, db := setupColumnTest(t)
	ownerToken, sharedToken, outsideToken, board := seedBoard(t, db)
	require.NoError(t, db.Create(&model.Column{Title: "Todo", BoardID: board.BoardID}).Error)
	require.NoError(t, db.Create(&model.Column{Title: "Done", BoardID: board.BoardID}).Error)

	path := fmt.Sprintf("/columns/%d/get", board.BoardID)

	for _, token := range []string{ownerToken, sharedToken} {
		w := doJSON(router, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["columns"], 2)
	}

	w := doJSON(router, http.MethodGet, path, outsideToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateColumnOwnerOnly(t *testing.T) {
	router, db := setupColumnTest(t)
	ownerToken, sharedToken, _, board := seedBoard(t, db)
	column := model.Column{Title: "Old", Description: "Keep", BoardID: board.BoardID}
	require.NoError(t, db.Create(&column).Error)
	path := fmt.Sprintf("/columns/update/%d", column.ColumnID)

	// Shared users can create and list but not rename.
	w := doJSON(router, http.MethodPatch, path, sharedToken, gin.H{"title": "New"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPatch, path, ownerToken, gin.H{"title": "New"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Column
	require.NoError(t, db.First(&updated, column.ColumnID).Error)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Keep", updated.Description)

	w = doJSON(router, http.MethodPatch, "/columns/update/99999", ownerToken, gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteColumnCascades(t *testing.T) {
	router, db := setupColumnTest(t)
	_, sharedToken, outsideToken, board := seedBoard(t, db)
	column := model.Column{Title: "Doomed", BoardID: board.BoardID}
	require.NoError(t, db.Create(&column).Error)
	task := model.Task{Title: "Task", ColumnID: column.ColumnID}
	require.NoError(t, db.Create(&task).Error)
	require.NoError(t, db.Create(&model.Subtask{Title: "Sub", TaskID: task.TaskID}).Error)

	path := fmt.Sprintf("/columns/%d/delete", column.ColumnID)

	w := doJSON(router, http.MethodDelete, path, outsideToken, gin.H{"board_id": board.BoardID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Shared users may delete columns.
	w = doJSON(router, http.MethodDelete, path, sharedToken, gin.H{"board_id": board.BoardID})
	require.Equal(t, http.StatusOK, w.Code)

	var columns, tasks, subtasks int64
	require.NoError(t, db.Model(&model.Column{}).Count(&columns).Error)
	require.NoError(t, db.Model(&model.Task{}).Count(&tasks).Error)
	require.NoError(t, db.Model(&model.Subtask{}).Count(&subtasks).Error)
	assert.Zero(t, columns)
	assert.Zero(t, tasks)
	assert.Zero(t, subtasks)
}
