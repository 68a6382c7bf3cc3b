package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/handler"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	posts := e.Group("/v1/posts")
	posts.GET("", blogHandler.ListPosts)
	posts.GET("/:id", blogHandler.GetPost)
	posts.GET("/:id/comments", blogHandler.ListComments)

	protected := e.Group("/v1/posts")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", blogHandler.CreatePost)
	protected.PUT("/:id", blogHandler.UpdatePost)
	protected.DELETE("/:id", blogHandler.DeletePost)
	protected.POST("/:id/like", blogHandler.LikePost)
	protected.DELETE("/:id/like", blogHandler.UnlikePost)
	protected.POST("/:id/comments", blogHandler.AddComment)
	protected.DELETE("/:id/comments/:commentId", blogHandler.DeleteComment)

	admin := e.Group("/v1/admin/posts")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.DELETE("/:id", blogHandler.DeletePost)
	admin.DELETE("/:id/comments/:commentId", blogHandler.DeleteComment)
}
