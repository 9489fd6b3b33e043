package subtask

import (
	"kanboard/middleware"
	"kanboard/model"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SubtaskController(router *gin.Engine, db *gorm.DB) {
	router.GET("/subtasks/by-task/:taskId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetSubtasksByTask(c, db)
	})
}

// subtaskProjection is the id/title/task_id shape returned by subtask reads.
func subtaskProjection(subtask *model.Subtask) gin.H {
	return gin.H{
		"id":      subtask.SubtaskID,
		"title":   subtask.Title,
		"task_id": subtask.TaskID,
	}
}

func GetSubtasksByTask(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var subtasks []model.Subtask
	if err := db.Where("task_id = ?", taskID).Find(&subtasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(subtasks))
	for i := range subtasks {
		response = append(response, subtaskProjection(&subtasks[i]))
	}
	c.JSON(http.StatusOK, gin.H{"subtasks": response})
}
