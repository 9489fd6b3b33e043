package board

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

func BoardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/boards")
	{
		routes.GET("", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			ListBoards(c, db)
		})
		routes.GET("/details", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			ListBoardDetails(c, db)
		})
		routes.GET("/detail/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			GetBoard(c, db)
		})
	}
}

// accessibleBoards returns boards the user owns plus boards shared with them.
func accessibleBoards(db *gorm.DB, userID uint) ([]model.Board, error) {
	shared := db.Model(&model.BoardShare{}).Select("board_id").Where("user_id = ?", userID)
	var boards []model.Board
	if err := db.Where("create_by = ? OR board_id IN (?)", userID, shared).Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func boardSummary(board *model.Board) gin.H {
	return gin.H{
		"id":          board.BoardID,
		"title":       board.Title,
		"description": board.Description,
		"owner_id":    board.CreatedBy,
	}
}

func boardDetails(board *model.Board) gin.H {
	columns := make([]gin.H, 0, len(board.Columns))
	for i := range board.Columns {
		column := &board.Columns[i]
		tasks := make([]gin.H, 0, len(column.Tasks))
		for j := range column.Tasks {
			task := &column.Tasks[j]
			subtasks := make([]gin.H, 0, len(task.Subtasks))
			for _, subtask := range task.Subtasks {
				subtasks = append(subtasks, gin.H{
					"id":          subtask.SubtaskID,
					"title":       subtask.Title,
					"description": subtask.Description,
					"is_done":     subtask.IsDone,
				})
			}
			tasks = append(tasks, gin.H{
				"id":          task.TaskID,
				"title":       task.Title,
				"description": task.Description,
				"status":      task.Status,
				"subtasks":    subtasks,
			})
		}
		columns = append(columns, gin.H{
			"id":          column.ColumnID,
			"title":       column.Title,
			"description": column.Description,
			"tasks":       tasks,
		})
	}

	shares := make([]gin.H, 0, len(board.Shares))
	for _, share := range board.Shares {
		shares = append(shares, gin.H{
			"user_id":  share.UserID,
			"username": share.User.Username,
			"email":    share.User.Email,
		})
	}

	details := boardSummary(board)
	details["columns"] = columns
	details["shares"] = shares
	return details
}

func ListBoards(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	boards, err := accessibleBoards(db, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(boards))
	for i := range boards {
		response = append(response, boardSummary(&boards[i]))
	}
	c.JSON(http.StatusOK, gin.H{"boards": response})
}

func ListBoardDetails(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	boards, err := accessibleBoards(db, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(boards))
	for i := range boards {
		loaded, err := services.GetBoardWithContents(db, boards[i].BoardID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		response = append(response, boardDetails(loaded))
	}
	c.JSON(http.StatusOK, gin.H{"boards": response})
}

func GetBoard(c *gin.Context, db *gorm.DB) {
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
	if role == services.RoleNone {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	board, err := services.GetBoardWithContents(db, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, boardDetails(board))
}
