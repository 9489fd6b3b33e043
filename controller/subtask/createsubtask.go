package subtask

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateSubtaskController(router *gin.Engine, db *gorm.DB) {
	router.POST("/subtasks/create", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateSubtask(c, db)
	})
}

// CreateSubtask requires authentication only; ownership is not checked.
func CreateSubtask(c *gin.Context, db *gorm.DB) {
	var request dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	if err := db.Where("task_id = ?", request.TaskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	subtask := model.Subtask{
		Title:       request.Title,
		Description: request.Description,
		IsDone:      request.IsDone,
		TaskID:      request.TaskID,
	}
	if err := db.Create(&subtask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subtask"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subtask created successfully",
		"subtask": subtaskProjection(&subtask),
	})
}
