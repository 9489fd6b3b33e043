package task

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/tasks/:taskId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, db)
	})
}

// DeleteTask rejects with Forbidden unless the task and column exist and the
// caller owns the board. Cascade removes subtasks before the task.
func DeleteTask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request dto.DeleteTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	taskErr := db.Where("task_id = ? AND column_id = ?", taskID, request.ColumnID).First(&task).Error
	var column model.Column
	columnErr := db.Where("column_id = ?", request.ColumnID).First(&column).Error
	if taskErr != nil || columnErr != nil {
		if errors.Is(taskErr, gorm.ErrRecordNotFound) || errors.Is(columnErr, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var board model.Board
	if err := db.Where("board_id = ?", column.BoardID).First(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if board.CreatedBy != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		return tx.Where("task_id = ?", taskID).Delete(&model.Task{}).Error
	})
	if err != nil {
		log.Printf("delete task %d failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
