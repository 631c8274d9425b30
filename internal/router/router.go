package router

import (
	"time"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/config"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/handler"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/infra"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/middleware"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/repository"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/service"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	tokens := infra.NewRedisTokenStore(rdb)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	clothRepo := repository.NewClothRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, tokens, cfg)
	catalogSvc := service.NewCatalogService(categoryRepo)
	clothSvc := service.NewClothService(clothRepo, categoryRepo)
	feedbackSvc := service.NewFeedbackService(ratingRepo, reviewRepo, dispatcher, cfg.ContactRecipient)
	contactSvc := service.NewContactService(mailer, mailCB, cfg.ContactRecipient)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc, feedbackSvc)
	clothesH := handler.NewClothesHandler(clothSvc)
	feedbackH := handler.NewFeedbackHandler(feedbackSvc)
	contactH := handler.NewContactHandler(contactSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public pages
	r.GET("/health", handler.Health(db, rdb, mailCB))
	r.GET("/", catalogH.Landing)
	r.GET("/about", catalogH.About)
	r.GET("/category/:slug", catalogH.CategoryDetail)

	// Public catalog reads
	r.GET("/clothes", clothesH.List)
	r.GET("/clothes/:id", clothesH.Detail)

	// Public feedback / contact
	r.POST("/clothes/:id/like", clothesH.Like)
	r.POST("/submit-rating", feedbackH.SubmitRating)
	r.POST("/submit-review", feedbackH.SubmitReview)
	r.POST("/send-contact", contactH.Send)

	// Manager surface
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, tokens)
	staffMW := middleware.RequireStaff()

	manager := r.Group("/manager")
	{
		manager.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		manager.POST("/refresh", authH.Refresh)
		manager.POST("/logout", jwtMW, authH.Logout)

		// Reads are public — see the access-control contract: only
		// mutations and the dashboard are gated.
		manager.GET("/clothes", clothesH.List)
		manager.GET("/clothes/:id", clothesH.Detail)

		manager.GET("/dashboard", jwtMW, staffMW, clothesH.Dashboard)
		manager.POST("/clothes/add", jwtMW, staffMW, clothesH.Create)
		manager.POST("/clothes/:id/edit", jwtMW, staffMW, clothesH.Edit)

		manager.POST("/categories", jwtMW, staffMW, catalogH.CreateCategory)
		manager.DELETE("/categories/:id", jwtMW, staffMW, catalogH.DeleteCategory)
		manager.POST("/reviews/:id/approve", jwtMW, staffMW, feedbackH.ApproveReview)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
