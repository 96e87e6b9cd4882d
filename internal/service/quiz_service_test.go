package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizServiceOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	owner := seedUser(t, db, "dono@example.com")
	other := seedUser(t, db, "outro@example.com")
	category := seedCategory(t, db, "Informática")
	quiz := seedQuiz(t, db, owner.ID, category.ID, "a")

	t.Run("delete por outro usuário é proibido e mantém o quiz", func(t *testing.T) {
		err := svc.Delete(quiz.ID, other.ID)
		assert.ErrorIs(t, err, util.ErrNotQuizOwner)

		kept, err := svc.Get(quiz.ID)
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, kept.ID)
	})

	t.Run("update por outro usuário é proibido", func(t *testing.T) {
		_, err := svc.Update(quiz.ID, other.ID, &model.Quiz{
			CategoriaID:     category.ID,
			Pergunta:        "alterada",
			AlternativaA:    "a", AlternativaB: "b", AlternativaC: "c", AlternativaD: "d",
			RespostaCorreta: "b",
		})
		assert.ErrorIs(t, err, util.ErrNotQuizOwner)
	})

	t.Run("dono consegue excluir", func(t *testing.T) {
		require.NoError(t, svc.Delete(quiz.ID, owner.ID))

		_, err := svc.Get(quiz.ID)
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})
}

func TestQuizServiceCreateNormalizesLetter(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	user := seedUser(t, db, "ana@example.com")
	category := seedCategory(t, db, "Direitos")

	quiz := &model.Quiz{
		UserID:          user.ID,
		CategoriaID:     category.ID,
		Pergunta:        "pergunta",
		AlternativaA:    "a", AlternativaB: "b", AlternativaC: "c", AlternativaD: "d",
		RespostaCorreta: "C",
	}
	require.NoError(t, svc.Create(quiz))
	assert.Equal(t, "c", quiz.RespostaCorreta)
}

func TestQuizServiceCreateRequiresCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	user := seedUser(t, db, "ana@example.com")

	err := svc.Create(&model.Quiz{
		UserID:          user.ID,
		CategoriaID:     9999,
		Pergunta:        "pergunta",
		AlternativaA:    "a", AlternativaB: "b", AlternativaC: "c", AlternativaD: "d",
		RespostaCorreta: "a",
	})
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestQuizServiceRandomBatchByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	user := seedUser(t, db, "ana@example.com")
	full := seedCategory(t, db, "Com Questões")
	empty := seedCategory(t, db, "Sem Questões")

	for i := 0; i < 8; i++ {
		seedQuiz(t, db, user.ID, full.ID, "a")
	}

	t.Run("limita o lote a PlayBatchSize", func(t *testing.T) {
		questions, err := svc.RandomBatchByCategory(full.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(questions), PlayBatchSize)
		assert.NotEmpty(t, questions)

		for _, q := range questions {
			assert.Len(t, q.Alternativas, 4)
			assert.Equal(t, "a", q.RespostaCorreta)
		}
	})

	t.Run("categoria sem questões é not found, nunca lote vazio", func(t *testing.T) {
		_, err := svc.RandomBatchByCategory(empty.ID)
		assert.ErrorIs(t, err, util.ErrNoQuestions)
	})

	t.Run("categoria inexistente é not found", func(t *testing.T) {
		_, err := svc.RandomBatchByCategory(9999)
		assert.ErrorIs(t, err, util.ErrCategoryNotFound)
	})
}

func TestQuizServiceLastAnsweredQuiz(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)
	answers := NewUserAnswerService(svc.AnswerRepo, svc.QuizRepo)

	user := seedUser(t, db, "ana@example.com")
	category := seedCategory(t, db, "Raciocínio Lógico")
	quiz := seedQuiz(t, db, user.ID, category.ID, "b")

	t.Run("sem respostas ainda", func(t *testing.T) {
		_, _, err := svc.LastAnsweredQuiz(user.ID)
		assert.ErrorIs(t, err, util.ErrNoAnsweredQuiz)
	})

	t.Run("pontuação é a taxa real de acerto", func(t *testing.T) {
		// Três respostas ao mesmo quiz, uma correta: 33%.
		for _, letter := range []string{"b", "a", "c"} {
			_, err := answers.Create(user.ID, quiz.ID, letter)
			require.NoError(t, err)
		}

		last, score, err := svc.LastAnsweredQuiz(user.ID)
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, last.ID)
		assert.Equal(t, 33, score)
	})
}
