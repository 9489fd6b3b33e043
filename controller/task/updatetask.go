package task

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

func UpdateTaskController(router *gin.Engine, db *gorm.DB) {
	router.PATCH("/tasks/update/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTask(c, db)
	})
}

func UpdateTask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	_, _, board, err := services.TaskBoard(db, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if board.CreatedBy != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if len(updates) > 0 {
		if err := db.Model(&model.Task{}).Where("task_id = ?", taskID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
	}

	var task model.Task
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    taskSummary(&task),
	})
}
