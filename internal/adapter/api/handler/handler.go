package handler

import (
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	shelterHandler  *ShelterHandler
	petHandler      *PetHandler
	adoptionHandler *AdoptionHandler
	blogHandler     *BlogHandler
	favoriteHandler *FavoriteHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	shelterUseCase *usecase.ShelterUseCase,
	petUseCase *usecase.PetUseCase,
	adoptionUseCase *usecase.AdoptionUseCase,
	blogUseCase *usecase.BlogUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	shelterHandler = NewShelterHandler(shelterUseCase)
	petHandler = NewPetHandler(petUseCase)
	adoptionHandler = NewAdoptionHandler(adoptionUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetShelterHandler() *ShelterHandler {
	return shelterHandler
}

func GetPetHandler() *PetHandler {
	return petHandler
}

func GetAdoptionHandler() *AdoptionHandler {
	return adoptionHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}
