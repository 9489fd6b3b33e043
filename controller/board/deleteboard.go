package board

import (
	"errors"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteBoardController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/boards/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteBoard(c, db)
	})
}

func DeleteBoard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	boardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID"})
		return
	}

	role, err := services.GetBoardRole(db, boardID, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if role != services.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var columnIDs []int
		if err := tx.Model(&model.Column{}).Where("board_id = ?", boardID).Pluck("column_id", &columnIDs).Error; err != nil {
			return err
		}
		if len(columnIDs) > 0 {
			var taskIDs []int
			if err := tx.Model(&model.Task{}).Where("column_id IN ?", columnIDs).Pluck("task_id", &taskIDs).Error; err != nil {
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
			if err := tx.Where("board_id = ?", boardID).Delete(&model.Column{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("board_id = ?", boardID).Delete(&model.BoardInvite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", boardID).Delete(&model.BoardShare{}).Error; err != nil {
			return err
		}
		return tx.Where("board_id = ?", boardID).Delete(&model.Board{}).Error
	})
	if err != nil {
		log.Printf("delete board %d failed: %v", boardID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
