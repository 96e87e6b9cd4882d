package controller

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Mesmo esquema dos testes de serviço: MySQL via CONCURSO_TEST_DSN ou skip.
func setupControllerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CONCURSO_TEST_DSN")
	if dsn == "" {
		t.Skip("CONCURSO_TEST_DSN não definido, pulando teste de integração")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao conectar no banco de teste: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Quiz{}, &model.Favorite{}); err != nil {
		t.Fatalf("falha na migração do banco de teste: %v", err)
	}

	for _, table := range []string{"favoritos", "quizzes", "categorias", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("falha ao limpar tabela %s: %v", table, err)
		}
	}

	return db
}

// favoriteRouter monta as rotas de favoritos já autenticadas como o usuário dado.
func favoriteRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewQuizRepository(db),
	)
	ctrl := NewFavoriteController(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID})
	})
	router.POST("/api/favoritar-quiz/:id", ctrl.Favorite)
	router.DELETE("/api/desfavoritar-quiz/:id", ctrl.Unfavorite)
	return router
}

func TestFavoriteEndpointStatuses(t *testing.T) {
	db := setupControllerDB(t)

	user := &model.User{Name: "Usuário Teste", Email: "fav@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	category := &model.Category{Nome: "Informática", Icone: "📘"}
	require.NoError(t, db.Create(category).Error)

	quiz := &model.Quiz{
		UserID:          user.ID,
		CategoriaID:     category.ID,
		Pergunta:        "pergunta",
		AlternativaA:    "alt a",
		AlternativaB:    "alt b",
		AlternativaC:    "alt c",
		AlternativaD:    "alt d",
		RespostaCorreta: "a",
	}
	require.NoError(t, db.Create(quiz).Error)

	router := favoriteRouter(db, user.ID)

	t.Run("favoritar devolve 201 com o registro criado", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/favoritar-quiz/%d", quiz.ID), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Quiz favoritado com sucesso!", body["message"])
		assert.NotNil(t, body["favorito"])
	})

	t.Run("favoritar de novo continua 201 sem duplicar", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/favoritar-quiz/%d", quiz.ID), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var count int64
		require.NoError(t, db.Model(&model.Favorite{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("quiz inexistente devolve 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/favoritar-quiz/9999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("desfavoritar devolve 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/desfavoritar-quiz/%d", quiz.ID), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
