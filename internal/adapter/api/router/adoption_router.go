package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/handler"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
)

func SetupAdoptionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	adoptionHandler := handler.GetAdoptionHandler()

	applications := e.Group("/v1/applications")
	applications.Use(authMiddleware.Authenticate)
	applications.POST("", adoptionHandler.Apply)
	applications.GET("", adoptionHandler.ListMine)
	applications.GET("/:id", adoptionHandler.Get)
	applications.POST("/:id/withdraw", adoptionHandler.Withdraw)

	shelterApplications := e.Group("/v1/shelter-applications")
	shelterApplications.Use(authMiddleware.Authenticate)
	shelterApplications.GET("", adoptionHandler.ListForShelter)
	shelterApplications.POST("/:id/decide", adoptionHandler.Decide)
	shelterApplications.POST("/:id/complete", adoptionHandler.Complete)
}
