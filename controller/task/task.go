package task

import (
	"kanboard/middleware"
	"kanboard/model"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TaskController(router *gin.Engine, db *gorm.DB) {
	router.GET("/tasks/by-column/:columnId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetTasksByColumn(c, db)
	})
}

func taskSummary(task *model.Task) gin.H {
	return gin.H{
		"id":          task.TaskID,
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"column_id":   task.ColumnID,
	}
}

func GetTasksByColumn(c *gin.Context, db *gorm.DB) {
	columnID, err := strconv.Atoi(c.Param("columnId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID"})
		return
	}

	var tasks []model.Task
	if err := db.Where("column_id = ?", columnID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(tasks))
	for i := range tasks {
		response = append(response, taskSummary(&tasks[i]))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": response})
}
