package connection

import (
	"kanboard/controller/auth"
	"kanboard/controller/board"
	"kanboard/controller/column"
	"kanboard/controller/subtask"
	"kanboard/controller/task"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	// Token signing must be configured explicitly; there is no default secret.
	if os.Getenv("JWT_SECRET_KEY") == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)

	board.BoardController(router, DB)
	board.CreateBoardController(router, DB)
	board.UpdateBoardController(router, DB)
	board.DeleteBoardController(router, DB)
	board.ShareBoardController(router, DB)
	board.InviteBoardController(router, DB)

	column.ColumnController(router, DB)
	column.CreateColumnController(router, DB)
	column.UpdateColumnController(router, DB)
	column.DeleteColumnController(router, DB)

	task.TaskController(router, DB)
	task.CreateTaskController(router, DB)
	task.UpdateTaskController(router, DB)
	task.MoveTaskController(router, DB)
	task.UpdateTaskWithSubtasksController(router, DB)
	task.DeleteTaskController(router, DB)

	subtask.SubtaskController(router, DB)
	subtask.CreateSubtaskController(router, DB)
	subtask.UpdateSubtaskController(router, DB)
	subtask.DeleteSubtaskController(router, DB)

	router.Run()
}
