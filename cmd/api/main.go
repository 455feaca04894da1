package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"lapakin/internal/adapter/api"
	"lapakin/internal/adapter/api/handler"
	"lapakin/internal/adapter/api/router"
	"lapakin/internal/adapter/repository"
	"lapakin/internal/domain/service"
	"lapakin/internal/infrastructure/storage"
	"lapakin/internal/usecase"
	"lapakin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var imageStorage service.ImageStorage
	switch cfg.StorageBackend {
	case config.StorageBackendGCS:
		imageStorage, err = storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.CredentialsFile)
	default:
		imageStorage, err = storage.NewLocalStorageClient(cfg.UploadDir, cfg.PublicBaseURL)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage backend %q: %v", cfg.StorageBackend, err)
	}
	defer imageStorage.Close()

	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	itemUseCase := usecase.NewItemUseCase(itemRepo, imageStorage)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	handler.Setup(itemUseCase, orderUseCase, imageStorage)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	if cfg.StorageBackend == config.StorageBackendLocal {
		e.Static("/uploads", cfg.UploadDir)
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
