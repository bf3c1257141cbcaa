package service

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(handlers *Handlers, tracker *RequestTracker) *gin.Engine {
	routes := gin.New()
	routes.Use(gin.Recovery(), tracker.Track)

	routes.GET("/health", handlers.Health)
	routes.GET("/books/health", handlers.Health)

	routes.POST("/book", handlers.CreateBook)
	routes.GET("/book", handlers.GetBookById)
	routes.PUT("/book", handlers.UpdateBookPrice)
	routes.DELETE("/book", handlers.DeleteBookById)

	routes.GET("/books", handlers.SearchBooks)
	routes.GET("/books/total", handlers.CountBooks)

	logs := routes.Group("/logs")
	{
		logs.GET("/level", handlers.GetLoggerLevel)
		logs.PUT("/level", handlers.SetLoggerLevel)
	}

	routes.GET("/activity", handlers.Activity)

	return routes
}
