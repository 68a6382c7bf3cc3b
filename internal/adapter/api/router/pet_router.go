package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/handler"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
)

func SetupPetRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	petHandler := handler.GetPetHandler()

	pets := e.Group("/v1/pets")
	pets.GET("", petHandler.List)
	pets.GET("/:id", petHandler.Get)

	myPets := e.Group("/v1/my-pets")
	myPets.Use(authMiddleware.Authenticate)
	myPets.POST("", petHandler.Create)
	myPets.PUT("/:id", petHandler.Update)
	myPets.PATCH("/:id/status", petHandler.UpdateStatus)
	myPets.DELETE("/:id", petHandler.Delete)
}
