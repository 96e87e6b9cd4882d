package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Testes de integração: precisam de um MySQL apontado por CONCURSO_TEST_DSN,
// por exemplo "root:root@tcp(127.0.0.1:3306)/concurso_test?charset=utf8mb4&parseTime=True".
// Sem a variável, os testes são pulados.
func setupTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Content{},
		&model.Quiz{},
		&model.UserAnswer{},
		&model.Favorite{},
		&model.RankingEntry{},
		&model.StudyPlan{},
	); err != nil {
		t.Fatalf("falha na migração do banco de teste: %v", err)
	}

	// Cada teste começa com tabelas vazias.
	for _, table := range []string{
		"respostas_usuarios", "favoritos", "ranking", "study_plans",
		"quizzes", "conteudos", "categorias", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("falha ao limpar tabela %s: %v", table, err)
		}
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Usuário Teste",
		Email:    email,
		Password: "$2a$10$stubstubstubstubstubstubstubstubstubstubstubstubstubst",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, nome string) *model.Category {
	t.Helper()

	category := &model.Category{Nome: nome, Icone: "📘"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("falha ao criar categoria: %v", err)
	}
	return category
}

func seedQuiz(t *testing.T, db *gorm.DB, userID, categoriaID uint, correct string) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{
		UserID:          userID,
		CategoriaID:     categoriaID,
		Pergunta:        fmt.Sprintf("pergunta %s", correct),
		AlternativaA:    "alt a",
		AlternativaB:    "alt b",
		AlternativaC:    "alt c",
		AlternativaD:    "alt d",
		RespostaCorreta: correct,
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("falha ao criar quiz: %v", err)
	}
	return quiz
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserAnswerRepository(db),
	)
}
