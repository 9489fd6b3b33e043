package board

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InviteBoardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/boards")
	{
		routes.POST("/invite/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateBoardInvite(c, db)
		})
		routes.POST("/join", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			JoinBoard(c, db)
		})
	}
}

// generateSecureToken returns length random bytes hex-encoded.
func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func CreateBoardInvite(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	boardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	role, err := services.GetBoardRole(db, boardID, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if role != services.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	token, err := generateSecureToken(32)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	invite := model.BoardInvite{
		BoardID:   boardID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Invite link created successfully",
		"share_url":  os.Getenv("APP_BASE_URL") + "/boards/join?token=" + token,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"board_id":   boardID,
	})
}

func JoinBoard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var request dto.JoinBoardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var invite model.BoardInvite
	err := db.Where("token = ? AND expires_at > ?", request.Token, time.Now()).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var board model.Board
	if err := db.Where("board_id = ?", invite.BoardID).First(&board).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	if board.CreatedBy == int(userId) {
		c.JSON(http.StatusOK, gin.H{"message": "Already a member", "board_id": board.BoardID})
		return
	}

	var existing model.BoardShare
	err = db.Where("board_id = ? AND user_id = ?", board.BoardID, userId).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already a member", "board_id": board.BoardID})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	share := model.BoardShare{
		BoardID: board.BoardID,
		UserID:  int(userId),
	}
	if err := db.Create(&share).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined board successfully", "board_id": board.BoardID})
}
