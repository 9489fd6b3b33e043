package main

import (
	"kanboard/connection"
	"kanboard/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	go scheduler.StartScheduler()
	connection.StartServer()
}
