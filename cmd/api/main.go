package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "claims-backend/internal/adapter/http"
	"claims-backend/internal/adapter/middleware"
	"claims-backend/internal/adapter/repository/mysql"
	"claims-backend/internal/analysis"
	"claims-backend/internal/config"
	"claims-backend/internal/infrastructure/cache"
	"claims-backend/internal/infrastructure/db"
	"claims-backend/internal/infrastructure/filestore"
	claimuc "claims-backend/internal/usecase/claim"
	estimateuc "claims-backend/internal/usecase/estimate"
	photouc "claims-backend/internal/usecase/photo"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	store, err := filestore.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	claimRepo := mysql.NewClaimRepository(gdb)
	photoRepo := mysql.NewPhotoRepository(gdb)
	estimateRepo := mysql.NewEstimateRepository(gdb)
	guow := mysql.NewGormUoW(gdb)
	analyzer := analysis.New()

	claimUC := claimuc.NewUsecase(claimRepo, photoRepo, estimateRepo)
	photoUC := photouc.NewUsecase(claimRepo, photoRepo, guow, store, analyzer, cfg.MaxImageDim)
	estimateUC := estimateuc.NewUsecase(claimRepo, estimateRepo, guow)

	h := httpadp.NewHandler()
	claimH := httpadp.NewClaimHandler(claimUC)
	photoH := httpadp.NewPhotoHandler(photoUC, store, cfg.MaxUploadBytes)
	estimateH := httpadp.NewEstimateHandler(estimateUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/uploads/:filename", photoH.ServeUpload)

	api := e.Group("/api")
	api.GET("/claims", claimH.ListClaims)
	api.POST("/claims", claimH.CreateClaim, idemp)
	api.GET("/claims/:claim_number", claimH.GetClaim)
	api.PATCH("/claims/:claim_number", claimH.UpdateClaim, idemp)

	api.GET("/claims/:claim_number/photos", photoH.ListClaimPhotos)
	api.POST("/claims/:claim_number/photos", photoH.UploadPhoto, idemp)
	api.GET("/photos/:id", photoH.GetPhoto)
	api.DELETE("/photos/:id", photoH.DeletePhoto, idemp)

	api.GET("/claims/:claim_number/estimate", estimateH.GetEstimate)
	api.POST("/claims/:claim_number/estimate", estimateH.CreateEstimate, idemp)
	api.PATCH("/claims/:claim_number/estimate", estimateH.UpdateEstimate, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
