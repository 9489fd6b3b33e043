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

func UpdateBoardController(router *gin.Engine, db *gorm.DB) {
	router.PATCH("/boards/update/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateBoard(c, db)
	})
}

func UpdateBoard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	boardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	var request dto.UpdateBoardRequest
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

	// Absent fields keep their prior values.
	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if len(updates) > 0 {
		if err := db.Model(&model.Board{}).Where("board_id = ?", boardID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
			return
		}
	}

	var board model.Board
	if err := db.Where("board_id = ?", boardID).First(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Board updated successfully",
		"board":   boardSummary(&board),
	})
}
