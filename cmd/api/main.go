package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"doctrans/internal/config"
	"doctrans/internal/database"
	"doctrans/internal/extract"
	"doctrans/internal/middleware"
	"doctrans/internal/modules/files"
	"doctrans/internal/modules/history"
	"doctrans/internal/modules/jobs"
	"doctrans/internal/modules/translation"
	"doctrans/internal/storage"
	"doctrans/internal/storage/localfs"
	"doctrans/internal/storage/s3"
	"doctrans/internal/translator"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&history.Record{}); err != nil {
		log.Fatal(err)
	}

	var blobs storage.ObjectStore
	if cfg.S3Endpoint != "" {
		blobs, err = s3.New(s3.Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("Using local filesystem storage:", cfg.StorageRoot)
		blobs = localfs.New(cfg.StorageRoot)
	}

	textClient := translator.New(cfg.TranslatorEndpoint, cfg.TranslatorKey, cfg.TranslatorRegion)
	batchClient := translator.NewBatchClient(cfg.TranslatorEndpoint, cfg.TranslatorKey, cfg.TranslatorRegion)

	historyRepo := history.NewRepository(db)
	extractor := extract.NewService(nil)

	filesService := files.NewService(blobs, cfg.SourceContainer, cfg.TranslatedContainer)
	filesHandler := files.NewHandler(filesService)

	jobsService := jobs.NewService(jobs.NewMemoryStore(), batchClient, blobs, historyRepo,
		cfg.SourceContainer, cfg.TranslatedContainer)
	jobsHandler := jobs.NewHandler(jobsService)

	translationService := translation.NewService(textClient, jobsService, extractor, blobs,
		historyRepo, cfg.SourceContainer, cfg.TranslatedContainer)
	translationHandler := translation.NewHandler(translationService)

	historyHandler := history.NewHandler(historyRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	api := r.Group("/api")
	{
		filesHandler.RegisterRoutes(api)
		translationHandler.RegisterRoutes(api)
		jobsHandler.RegisterRoutes(api)
		historyHandler.RegisterRoutes(api)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
