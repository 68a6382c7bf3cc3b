package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupShelterRouter(e, authMiddleware, adminMiddleware)
	SetupPetRouter(e, authMiddleware)
	SetupAdoptionRouter(e, authMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
