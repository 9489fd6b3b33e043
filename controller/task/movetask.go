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

func MoveTaskController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/tasks/move-task/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		MoveTask(c, db)
	})
}

// MoveTask reassigns a task to another column and returns the target column
// with its tasks and their subtask id/title projections. Authentication only;
// the operation does not verify board ownership.
func MoveTask(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var task model.Task
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var target model.Column
	if err := db.Where("column_id = ?", request.NewColumnID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := db.Model(&model.Task{}).Where("task_id = ?", taskID).Update("column_id", target.ColumnID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}

	column, err := services.GetColumnWithTasks(db, target.ColumnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	tasks := make([]gin.H, 0, len(column.Tasks))
	for i := range column.Tasks {
		entry := taskSummary(&column.Tasks[i])
		subtasks := make([]gin.H, 0, len(column.Tasks[i].Subtasks))
		for _, subtask := range column.Tasks[i].Subtasks {
			subtasks = append(subtasks, gin.H{
				"id":    subtask.SubtaskID,
				"title": subtask.Title,
			})
		}
		entry["subtasks"] = subtasks
		tasks = append(tasks, entry)
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task moved successfully",
		"column": gin.H{
			"id":          column.ColumnID,
			"title":       column.Title,
			"description": column.Description,
			"board_id":    column.BoardID,
			"tasks":       tasks,
		},
	})
}
