package subtask

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

func DeleteSubtaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/subtasks/:subtaskId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteSubtask(c, db)
	})
}

func DeleteSubtask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	subtaskID, err := strconv.Atoi(c.Param("subtaskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subtask ID"})
		return
	}

	var request dto.DeleteSubtaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	subtask, _, _, board, err := services.SubtaskBoard(db, subtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if subtask.TaskID != request.TaskID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
		return
	}
	if board.CreatedBy != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := db.Where("subtask_id = ?", subtaskID).Delete(&model.Subtask{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subtask"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subtask deleted successfully"})
}
