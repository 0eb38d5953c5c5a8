package app

import (
	"net/http"

	mediaHTTP "immo-media/internal/controller/http"
	"immo-media/internal/repo/cache"
	"immo-media/internal/repo/persistent"
	"immo-media/internal/usecase"
	"immo-media/pkg/config"
	"immo-media/pkg/imaging"
	"immo-media/pkg/logger"
	"immo-media/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "immo-media/docs" // Swagger docs
)

// multipartSlack leaves room for part headers and the id_bien field.
const multipartSlack = 1 << 20

// Dependencies are the collaborators behind the HTTP surface. ListCache and
// Events are optional and may be left nil.
type Dependencies struct {
	MediaRepo       persistent.MediaRepository
	TransactionRepo persistent.TransactionRepository
	Store           usecase.MediaStore
	Provider        usecase.PaymentProvider
	ListCache       cache.MediaListCache
	Events          usecase.EventPublisher
}

func NewRouter(cfg *config.Config, log *logger.Logger, deps Dependencies) *gin.Engine {
	mediaUseCase := usecase.NewMediaUseCase(
		deps.MediaRepo,
		deps.Store,
		deps.ListCache,
		deps.Events,
		usecase.MediaOptions{
			Image: imaging.Options{
				MaxWidth:  cfg.ImageMaxWidth,
				MaxHeight: cfg.ImageMaxHeight,
				Quality:   cfg.ImageQuality,
				MaxPixels: cfg.ImageMaxPixels,
			},
			ImageMaxBytes:     cfg.ImageMaxBytes,
			VideoMaxBytes:     cfg.VideoMaxBytes,
			DefaultBienID:     cfg.DefaultBienID,
			CompensateOrphans: cfg.CompensateOrphanUpload,
		},
		log,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		deps.TransactionRepo,
		deps.Provider,
		usecase.PaymentOptions{
			DefaultUserID: cfg.DefaultPaymentUserID,
			DefaultBienID: cfg.DefaultPaymentBienID,
		},
		log,
	)
	webhookUseCase := usecase.NewWebhookUseCase(deps.TransactionRepo, deps.Events, log)

	mediaHandler := mediaHTTP.NewMediaHandler(mediaUseCase, log)
	paymentHandler := mediaHTTP.NewPaymentHandler(paymentUseCase, log)
	webhookHandler := mediaHTTP.NewWebhookHandler(webhookUseCase, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	// parts above this spill to temp files
	r.MaxMultipartMemory = cfg.ImageMaxBytes + 1<<20

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/", mediaHTTP.Root)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	images := r.Group("/images")
	{
		images.POST("/upload", middleware.BodyLimit(cfg.ImageMaxBytes+multipartSlack), mediaHandler.UploadImage)
		images.POST("/videos/upload", middleware.BodyLimit(cfg.VideoMaxBytes+multipartSlack), mediaHandler.UploadVideo)
		images.GET("/bien/:id", mediaHandler.ListByBien)
		images.DELETE("/delete/*public_id", mediaHandler.Delete)
	}

	paiements := r.Group("/paiements")
	{
		paiements.POST("/initier", paymentHandler.Initiate)
		paiements.GET("/verifier/:reference", paymentHandler.CheckStatus)
	}

	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/campay", webhookHandler.Campay)
	}

	return r
}
