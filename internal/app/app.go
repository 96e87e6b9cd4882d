package app

import (
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/controller"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/pkg/configwatcher"
	"concurso_quiz_backend/pkg/database"
	"concurso_quiz_backend/pkg/logger"
	"concurso_quiz_backend/pkg/monitoring"
	"concurso_quiz_backend/pkg/security"
	"concurso_quiz_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user      *repository.UserRepository
	category  *repository.CategoryRepository
	content   *repository.ContentRepository
	quiz      *repository.QuizRepository
	answer    *repository.UserAnswerRepository
	favorite  *repository.FavoriteRepository
	ranking   *repository.RankingRepository
	studyPlan *repository.StudyPlanRepository
	token     *repository.TokenRepository
}

type services struct {
	auth      *service.AuthService
	category  *service.CategoryService
	content   *service.ContentService
	quiz      *service.QuizService
	answer    *service.UserAnswerService
	favorite  *service.FavoriteService
	ranking   *service.RankingService
	studyPlan *service.StudyPlanService
	storage   *service.StorageService
}

type controllers struct {
	auth      *controller.AuthController
	category  *controller.CategoryController
	content   *controller.ContentController
	quiz      *controller.QuizController
	play      *controller.PlayController
	answer    *controller.UserAnswerController
	favorite  *controller.FavoriteController
	ranking   *controller.RankingController
	studyPlan *controller.StudyPlanController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		category:  repository.NewCategoryRepository(db),
		content:   repository.NewContentRepository(db),
		quiz:      repository.NewQuizRepository(db),
		answer:    repository.NewUserAnswerRepository(db),
		favorite:  repository.NewFavoriteRepository(db),
		ranking:   repository.NewRankingRepository(db),
		studyPlan: repository.NewStudyPlanRepository(db),
		token:     repository.NewTokenRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.token, cfg)
	s.category = service.NewCategoryService(repos.category)
	s.content = service.NewContentService(repos.content, repos.category)
	s.quiz = service.NewQuizService(repos.quiz, repos.category, repos.answer)
	s.answer = service.NewUserAnswerService(repos.answer, repos.quiz)
	s.favorite = service.NewFavoriteService(repos.favorite, repos.quiz)
	s.ranking = service.NewRankingService(repos.ranking, repos.user, rdb)
	s.studyPlan = service.NewStudyPlanService(repos.studyPlan)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		category:  controller.NewCategoryController(s.category, s.storage),
		content:   controller.NewContentController(s.content),
		quiz:      controller.NewQuizController(s.quiz),
		play:      controller.NewPlayController(s.quiz),
		answer:    controller.NewUserAnswerController(s.answer),
		favorite:  controller.NewFavoriteController(s.favorite),
		ranking:   controller.NewRankingController(s.ranking),
		studyPlan: controller.NewStudyPlanController(s.studyPlan),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// O serviço funciona sem Redis, só perde cache do ranking e a
		// revogação de tokens no logout.
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("concurso-quiz", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded",
			zap.String("server_mode", newCfg.Server.Mode),
			zap.Int("rate_limit_max", newCfg.RateLimit.MaxRequests))
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
