package board

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ShareBoardController(router *gin.Engine, db *gorm.DB) {
	router.POST("/boards/share/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ShareBoard(c, db)
	})
}

func ShareBoard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	boardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	var request dto.ShareBoardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
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

	var target model.User
	if err := db.Where("email = ?", request.Email).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if target.UserID == int(userId) {
		c.JSON(http.StatusConflict, gin.H{"error": "User already has access to this board"})
		return
	}
	var existing model.BoardShare
	err = db.Where("board_id = ? AND user_id = ?", boardID, target.UserID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already has access to this board"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	share := model.BoardShare{
		BoardID: boardID,
		UserID:  target.UserID,
	}
	if err := db.Create(&share).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share board"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Board shared successfully",
		"share": gin.H{
			"board_id": share.BoardID,
			"user_id":  share.UserID,
		},
	})
}
