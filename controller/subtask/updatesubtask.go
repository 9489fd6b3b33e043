package subtask

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateSubtaskController(router *gin.Engine, db *gorm.DB) {
	router.PATCH("/subtasks/update/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateSubtask(c, db)
	})
}

// normalizeDoneFlag accepts a JSON boolean or the strings "true"/"false" in
// any case, returning nil when the field was absent.
func normalizeDoneFlag(value interface{}) (*bool, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			done := true
			return &done, nil
		case "false":
			done := false
			return &done, nil
		}
		return nil, errors.New("is_done must be true or false")
	default:
		return nil, errors.New("is_done must be a boolean")
	}
}

func UpdateSubtask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	subtaskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subtask ID"})
		return
	}

	var request dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	isDone, err := normalizeDoneFlag(request.IsDone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, _, _, board, err := services.SubtaskBoard(db, subtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
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
	if isDone != nil {
		updates["is_done"] = *isDone
	}
	if len(updates) > 0 {
		if err := db.Model(&model.Subtask{}).Where("subtask_id = ?", subtaskID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subtask"})
			return
		}
	}

	var updated model.Subtask
	if err := db.Where("subtask_id = ?", subtaskID).First(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Subtask updated successfully",
		"subtask": subtaskProjection(&updated),
	})
}
