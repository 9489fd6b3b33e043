package column

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

func DeleteColumnController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/columns/:columnId/delete", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteColumn(c, db)
	})
}

// DeleteColumn is open to the board owner and any shared user. The cascade
// removes the column's subtasks, then its tasks, then the column itself.
func DeleteColumn(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	columnID, err := strconv.Atoi(c.Param("columnId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID"})
		return
	}

	var request dto.DeleteColumnRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	role, err := services.GetBoardRole(db, request.BoardID, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if role == services.RoleNone {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var column model.Column
	if err := db.Where("column_id = ? AND board_id = ?", columnID, request.BoardID).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []int
		if err := tx.Model(&model.Task{}).Where("column_id = ?", columnID).Pluck("task_id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&model.Subtask{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&model.Task{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("column_id = ?", columnID).Delete(&model.Column{}).Error
	})
	if err != nil {
		log.Printf("delete column %d failed: %v", columnID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column deleted successfully"})
}
