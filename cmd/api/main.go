package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"rentersrights/internal/adapter/api"
	"rentersrights/internal/adapter/api/handler"
	apimiddleware "rentersrights/internal/adapter/api/middleware"
	"rentersrights/internal/adapter/api/router"
	"rentersrights/internal/adapter/repository"
	"rentersrights/internal/infrastructure/imaging"
	"rentersrights/internal/infrastructure/storage"
	"rentersrights/internal/usecase"
	"rentersrights/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
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

	storageClient, err := storage.NewS3Client(storage.S3Config{
		Endpoint:     cfg.S3Endpoint,
		CustomDomain: cfg.S3CustomDomain,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		AccessKeyID:  cfg.S3AccessKeyID,
		SecretKey:    cfg.S3SecretKey,
		UseSSL:       cfg.S3UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	if cfg.S3Endpoint != "" {
		if err := storageClient.EnsureBucket(ctx); err != nil {
			log.Fatalf("Failed to ensure bucket: %v", err)
		}
	}

	unitRepo := repository.NewFirestoreUnitRepository(firestoreClient)
	imageRepo := repository.NewFirestoreUnitImageRepository(firestoreClient)

	renditions := imaging.NewRenditionGenerator(cfg.ImageMinEdge, cfg.ImageMaxEdge, cfg.ImageSizes)
	quota := usecase.NewQuotaEvaluator(imageRepo, cfg.MaxDocumentsPerUnit, cfg.MaxMoveInPicturesPerUnit, cfg.MaxMoveOutPicturesPerUnit)

	signer := storage.NewPolicySigner(storage.PolicySignerConfig{
		UploadURL:   storageClient.UploadBaseURL(),
		Bucket:      cfg.S3Bucket,
		AccessKeyID: cfg.S3AccessKeyID,
		SecretKey:   cfg.S3SecretKey,
		ContentType: cfg.UploadContentType,
		MinBytes:    cfg.UploadMinBytes,
		MaxBytes:    cfg.UploadMaxBytes,
		Expiry:      cfg.SignatureExpiry,
	})

	unitUseCase := usecase.NewUnitUseCase(unitRepo, imageRepo, storageClient, cfg.MaxUnits)
	ingestUseCase := usecase.NewIngestUseCase(unitRepo, imageRepo, storageClient, renditions, quota)
	signUseCase := usecase.NewSignUseCase(unitRepo, imageRepo, signer, cfg.MaxImagesPerUnit, cfg.MaxUploadBatch)

	handler.Setup(unitUseCase, ingestUseCase, signUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	signLimiter := apimiddleware.NewRateLimiter(30, time.Minute)

	router.Setup(e, authMiddleware, signLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	log.Fatal(e.Start(":" + cfg.ServerPort))
}
