package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/handler"
	apimiddleware "github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/router"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/infrastructure/firebase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/infrastructure/realtime"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/infrastructure/storage"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := ""
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	shelterRepo := repository.NewFirestoreShelterRepository(firestoreClient)
	petRepo := repository.NewFirestorePetRepository(firestoreClient)
	applicationRepo := repository.NewFirestoreApplicationRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	blogRepo := repository.NewFirestoreBlogRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	hub := realtime.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	shelterUseCase := usecase.NewShelterUseCase(shelterRepo, userRepo)
	petUseCase := usecase.NewPetUseCase(petRepo, shelterRepo)
	adoptionUseCase := usecase.NewAdoptionUseCase(applicationRepo, petRepo, shelterRepo)
	chatUseCase := usecase.NewChatUseCase(conversationRepo, userRepo, shelterRepo, petRepo)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, userRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, petRepo)
	fileUseCase := usecase.NewFileUseCase(storageClient, fileMetadataRepo)

	handler.Setup(authUseCase, userUseCase, shelterUseCase, petUseCase, adoptionUseCase, blogUseCase, favoriteUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	chatHandler := handler.NewChatHandler(chatUseCase)
	fileHandler := handler.NewFileHandler(fileUseCase)
	wsHandler := handler.NewWebSocketHandler(hub, chatUseCase, userRepo, shelterRepo, authMiddleware)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupFileRouter(e, fileHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
