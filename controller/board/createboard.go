package board

import (
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateBoardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/boards")
	{
		routes.POST("/create", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateBoard(c, db)
		})
		routes.POST("/create-with-columns", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			CreateBoardWithColumns(c, db)
		})
	}
}

func CreateBoard(c *gin.Context, db *gorm.DB) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "User ID is required"})
		return
	}

	var request dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board := model.Board{
		Title:       request.Title,
		Description: request.Description,
		CreatedBy:   int(userId.(uint)),
	}
	if err := db.Create(&board).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Board created successfully",
		"board":   boardSummary(&board),
	})
}

func CreateBoardWithColumns(c *gin.Context, db *gorm.DB) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "User ID is required"})
		return
	}

	var request dto.CreateBoardWithColumnsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board := model.Board{
		Title:       request.Title,
		Description: request.Description,
		CreatedBy:   int(userId.(uint)),
	}
	columns := make([]model.Column, 0, len(request.Columns))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&board).Error; err != nil {
			return err
		}
		for _, input := range request.Columns {
			column := model.Column{
				Title:       input.Title,
				Description: input.Description,
				BoardID:     board.BoardID,
			}
			if err := tx.Create(&column).Error; err != nil {
				return err
			}
			columns = append(columns, column)
		}
		return nil
	})
	if err != nil {
		log.Printf("create board with columns failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	columnResponse := make([]gin.H, 0, len(columns))
	for i := range columns {
		columnResponse = append(columnResponse, gin.H{
			"id":          columns[i].ColumnID,
			"title":       columns[i].Title,
			"description": columns[i].Description,
		})
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Board created successfully",
		"board":   boardSummary(&board),
		"columns": columnResponse,
	})
}
