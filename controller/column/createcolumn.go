package column

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateColumnController(router *gin.Engine, db *gorm.DB) {
	router.POST("/columns/create", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateColumn(c, db)
	})
}

// CreateColumn is open to the board owner and any shared user.
func CreateColumn(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var request dto.CreateColumnRequest
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

	column := model.Column{
		Title:       request.Title,
		Description: request.Description,
		BoardID:     request.BoardID,
	}
	if err := db.Create(&column).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Column created successfully",
		"column":  columnSummary(&column),
	})
}
