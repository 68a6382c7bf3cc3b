package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/handler"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
)

func SetupShelterRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	shelterHandler := handler.GetShelterHandler()

	shelters := e.Group("/v1/shelters")
	shelters.GET("", shelterHandler.List)
	shelters.GET("/:id", shelterHandler.Get)

	protected := e.Group("/v1/shelters")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", shelterHandler.Register)
	protected.PATCH("/:id", shelterHandler.Update)

	mine := e.Group("/v1/my-shelter")
	mine.Use(authMiddleware.Authenticate)
	mine.GET("", shelterHandler.GetMine)

	admin := e.Group("/v1/admin/shelters")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/:id/verify", shelterHandler.Verify)
}
