package app

import (
	"concurso_quiz_backend/docs"
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/middleware"
	"concurso_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.token))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/me", c.auth.Me)

		// Categorias
		authGroup.GET("/categorias", c.category.List)
		authGroup.GET("/categorias/:id", c.category.Show)
		authGroup.POST("/categorias", c.category.Create)
		authGroup.PUT("/categorias/:id", c.category.Update)
		authGroup.DELETE("/categorias/:id", c.category.Delete)
		authGroup.POST("/categorias/upload-icone", c.category.UploadIcon)

		// Conteúdos de estudo
		authGroup.GET("/conteudos", c.content.List)
		authGroup.GET("/conteudos/:id", c.content.Show)
		authGroup.POST("/conteudos", c.content.Create)
		authGroup.PUT("/conteudos/:id", c.content.Update)
		authGroup.DELETE("/conteudos/:id", c.content.Delete)

		// Quizzes (administração)
		authGroup.GET("/quizzes", c.quiz.List)
		authGroup.GET("/quizzes/:id", c.quiz.Show)
		authGroup.POST("/quizzes", c.quiz.Create)
		authGroup.PUT("/quizzes/:id", c.quiz.Update)
		authGroup.DELETE("/quizzes/:id", c.quiz.Delete)
		authGroup.GET("/me/quizzes", c.quiz.MyQuizzes)
		authGroup.GET("/me/quizzes/last", c.quiz.LastAnswered)

		// Jogo
		authGroup.GET("/play/quizzes/random", c.play.Random)
		authGroup.GET("/play/quizzes/by-category/:id", c.play.RandomByCategory)
		authGroup.GET("/play/quizzes/:id", c.play.Show)

		// Respostas dos usuários
		authGroup.GET("/respostas_usuarios", c.answer.List)
		authGroup.GET("/respostas_usuarios/:id", c.answer.Show)
		authGroup.POST("/respostas_usuarios", c.answer.Create)
		authGroup.PUT("/respostas_usuarios/:id", c.answer.Update)
		authGroup.DELETE("/respostas_usuarios/:id", c.answer.Delete)

		// Favoritos
		authGroup.POST("/favoritar-quiz/:id", c.favorite.Favorite)
		authGroup.DELETE("/desfavoritar-quiz/:id", c.favorite.Unfavorite)
		authGroup.GET("/me/favoritos/quizzes", c.favorite.MyFavorites)

		// Ranking
		authGroup.GET("/ranking", c.ranking.Leaderboard)
		authGroup.GET("/ranking/:id", c.ranking.Show)
		authGroup.POST("/ranking", c.ranking.Create)
		authGroup.PUT("/ranking/:id", c.ranking.Update)
		authGroup.DELETE("/ranking/:id", c.ranking.Delete)

		// Planos de estudo (sem rota de show, o app só usa a listagem)
		authGroup.GET("/study-plans", c.studyPlan.List)
		authGroup.POST("/study-plans", c.studyPlan.Create)
		authGroup.PUT("/study-plans/:id", c.studyPlan.Update)
		authGroup.DELETE("/study-plans/:id", c.studyPlan.Delete)
	}
}
