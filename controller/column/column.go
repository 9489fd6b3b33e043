package column

import (
	"errors"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ColumnController(router *gin.Engine, db *gorm.DB) {
	router.GET("/columns/:boardId/get", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetColumnsByBoard(c, db)
	})
}

func columnSummary(column *model.Column) gin.H {
	return gin.H{
		"id":          column.ColumnID,
		"title":       column.Title,
		"description": column.Description,
		"board_id":    column.BoardID,
	}
}

// GetColumnsByBoard is open to the board owner and any shared user.
func GetColumnsByBoard(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	boardID, err := strconv.Atoi(c.Param("boardId"))
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
	if role == services.RoleNone {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var columns []model.Column
	if err := db.Where("board_id = ?", boardID).Find(&columns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(columns))
	for i := range columns {
		response = append(response, columnSummary(&columns[i]))
	}
	c.JSON(http.StatusOK, gin.H{"columns": response})
}
