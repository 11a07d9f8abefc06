package router

import (
	"authorshaven/controllers"
	"authorshaven/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		api.POST("/users", controllers.Register)
		api.POST("/users/login", controllers.Login)
		api.POST("/users/logout", middlewares.AuthMiddleware(), controllers.Logout)

		articles := api.Group("/articles")
		{
			articles.GET("", controllers.GetAllArticles)
			articles.GET("/:slug", controllers.GetOneArticle)
			articles.POST("", middlewares.AuthMiddleware(), controllers.CreateArticle)
			articles.PUT("/:slug/edit", middlewares.AuthMiddleware(), controllers.EditArticle)
			articles.DELETE("/:slug", middlewares.AuthMiddleware(), controllers.DeleteArticle)
			articles.POST("/search/filter", controllers.SearchArticles)
			articles.POST("/:slug/comments", middlewares.AuthMiddleware(), controllers.CreateComment)
			articles.GET("/:slug/comments", controllers.GetComments)
		}

		api.POST("/likes/:resourceId", middlewares.AuthMiddleware(), controllers.LikeOrDislikeResource)
	}

	return r
}
