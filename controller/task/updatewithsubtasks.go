package task

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateTaskWithSubtasksController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/tasks/update-with-subtasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTaskWithSubtasks(c, db)
	})
}

// UpdateTaskWithSubtasks updates a task, optionally moves it to another
// column, and reconciles its subtasks against the incoming list in a single
// transaction: subtasks whose ids are absent from the list are deleted,
// entries with an id are updated in place, entries without one are created.
func UpdateTaskWithSubtasks(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request dto.UpdateTaskWithSubtasksRequest
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

	// A move changes which board the ownership check runs against.
	if request.NewColumnID != nil {
		_, targetBoard, err := services.ColumnBoard(db, *request.NewColumnID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		board = targetBoard
	}
	if board.CreatedBy != int(userId) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var subtasks []model.Subtask
	err = db.Transaction(func(tx *gorm.DB) error {
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
		if request.NewColumnID != nil {
			updates["column_id"] = *request.NewColumnID
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.Task{}).Where("task_id = ?", taskID).Updates(updates).Error; err != nil {
				return err
			}
		}

		// Existence is decided against the stored id set, not RowsAffected:
		// the MySQL driver reports changed rows, so a no-op update counts zero.
		var currentIDs []int
		if err := tx.Model(&model.Subtask{}).Where("task_id = ?", taskID).Pluck("subtask_id", &currentIDs).Error; err != nil {
			return err
		}
		existing := make(map[int]bool, len(currentIDs))
		for _, id := range currentIDs {
			existing[id] = true
		}

		keepIDs := make([]int, 0, len(request.Subtasks))
		for _, item := range request.Subtasks {
			if item.SubtaskID != nil {
				keepIDs = append(keepIDs, *item.SubtaskID)
			}
		}

		// Everything not named in the incoming list goes away.
		query := tx.Where("task_id = ?", taskID)
		if len(keepIDs) > 0 {
			query = query.Where("subtask_id NOT IN ?", keepIDs)
		}
		if err := query.Delete(&model.Subtask{}).Error; err != nil {
			return err
		}

		for _, item := range request.Subtasks {
			if item.SubtaskID != nil && existing[*item.SubtaskID] {
				err := tx.Model(&model.Subtask{}).
					Where("subtask_id = ? AND task_id = ?", *item.SubtaskID, taskID).
					Updates(map[string]interface{}{
						"title":       item.Title,
						"description": item.Description,
						"is_done":     item.IsDone,
					}).Error
				if err != nil {
					return err
				}
				continue
			}
			subtask := model.Subtask{
				Title:       item.Title,
				Description: item.Description,
				IsDone:      item.IsDone,
				TaskID:      taskID,
			}
			if err := tx.Create(&subtask).Error; err != nil {
				return err
			}
		}

		return tx.Where("task_id = ?", taskID).Order("subtask_id").Find(&subtasks).Error
	})
	if err != nil {
		log.Printf("update task %d with subtasks failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	var task model.Task
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	subtaskResponse := make([]gin.H, 0, len(subtasks))
	for i := range subtasks {
		subtaskResponse = append(subtaskResponse, gin.H{
			"id":          subtasks[i].SubtaskID,
			"title":       subtasks[i].Title,
			"description": subtasks[i].Description,
			"is_done":     subtasks[i].IsDone,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Task updated successfully",
		"task":     taskSummary(&task),
		"subtasks": subtaskResponse,
	})
}
