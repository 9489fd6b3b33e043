package task

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks")
	{
		routes.POST("/create", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateTask(c, db)
		})
		routes.POST("/create-with-subtasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateTaskWithSubtasks(c, db)
		})
	}
}

// CreateTask requires authentication only; any caller who knows a column id
// may add a task to it.
func CreateTask(c *gin.Context, db *gorm.DB) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var column model.Column
	if err := db.Where("column_id = ?", request.ColumnID).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	task := model.Task{
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		ColumnID:    request.ColumnID,
	}
	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    taskSummary(&task),
	})
}

func CreateTaskWithSubtasks(c *gin.Context, db *gorm.DB) {
	var request dto.CreateTaskWithSubtasksRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var column model.Column
	if err := db.Where("column_id = ?", request.ColumnID).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	task := model.Task{
		Title:       request.Title,
		Description: request.Description,
		Status:      request.Status,
		ColumnID:    request.ColumnID,
	}
	subtasks := make([]model.Subtask, 0, len(request.Subtasks))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		for _, input := range request.Subtasks {
			subtask := model.Subtask{
				Title:       input.Title,
				Description: input.Description,
				IsDone:      input.IsDone,
				TaskID:      task.TaskID,
			}
			if err := tx.Create(&subtask).Error; err != nil {
				return err
			}
			subtasks = append(subtasks, subtask)
		}
		return nil
	})
	if err != nil {
		log.Printf("create task with subtasks failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	subtaskResponse := make([]gin.H, 0, len(subtasks))
	for i := range subtasks {
		subtaskResponse = append(subtaskResponse, gin.H{
			"id":      subtasks[i].SubtaskID,
			"title":   subtasks[i].Title,
			"is_done": subtasks[i].IsDone,
		})
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Task created successfully",
		"task":     taskSummary(&task),
		"subtasks": subtaskResponse,
	})
}
