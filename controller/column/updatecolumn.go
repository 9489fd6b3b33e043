package column

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

func UpdateColumnController(router *gin.Engine, db *gorm.DB) {
	router.PATCH("/columns/update/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateColumn(c, db)
	})
}

// UpdateColumn requires board ownership; shared users cannot rename columns.
func UpdateColumn(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	columnID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID"})
		return
	}

	var request dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	_, board, err := services.ColumnBoard(db, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
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
	if len(updates) > 0 {
		if err := db.Model(&model.Column{}).Where("column_id = ?", columnID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
			return
		}
	}

	var column model.Column
	if err := db.Where("column_id = ?", columnID).First(&column).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Column updated successfully",
		"column":  columnSummary(&column),
	})
}
