package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"kanboard/model"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	router := gin.New()
	AuthController(router, db)
	return router, db
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

func TestRegister(t *testing.T) {
	router, _ := setupAuthTest(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Nil(t, user["password"])

	// Same username again
	w = doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "other@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same email again
	w = doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice2", "email": "alice@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	router, db := setupAuthTest(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "secret1", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret1")))
}

func TestAccessTokenClaims(t *testing.T) {
	router, db := setupAuthTest(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tokenString := decodeBody(t, w)["access_token"].(string)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, strconv.Itoa(user.UserID), claims["sub"])
	assert.Equal(t, float64(user.UserID), claims["userId"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestLogin(t *testing.T) {
	router, _ := setupAuthTest(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// By username
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["access_token"])

	// By email
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"email": "alice@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Both identifiers
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither identifier
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown user
	w = doJSON(router, http.MethodPost, "/auth/login", "", gin.H{"username": "nobody", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	router, _ := setupAuthTest(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decodeBody(t, w)["access_token"].(string)

	w = doJSON(router, http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotNil(t, body["id"])

	w = doJSON(router, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
