package service

import (
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAnswerServiceComputesCorrectness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserAnswerService(
		repository.NewUserAnswerRepository(db),
		repository.NewQuizRepository(db),
	)

	user := seedUser(t, db, "ana@example.com")
	category := seedCategory(t, db, "Língua Portuguesa")
	quiz := seedQuiz(t, db, user.ID, category.ID, "b")

	t.Run("acerto é calculado no servidor, sem case", func(t *testing.T) {
		answer, err := svc.Create(user.ID, quiz.ID, "B")
		require.NoError(t, err)
		assert.True(t, answer.Acertou)
		assert.Equal(t, "b", answer.RespostaDada)
	})

	t.Run("resposta errada", func(t *testing.T) {
		answer, err := svc.Create(user.ID, quiz.ID, "c")
		require.NoError(t, err)
		assert.False(t, answer.Acertou)
	})

	t.Run("update recalcula o acerto", func(t *testing.T) {
		answer, err := svc.Create(user.ID, quiz.ID, "a")
		require.NoError(t, err)
		require.False(t, answer.Acertou)

		updated, err := svc.Update(answer.ID, "b")
		require.NoError(t, err)
		assert.True(t, updated.Acertou)
	})

	t.Run("quiz inexistente", func(t *testing.T) {
		_, err := svc.Create(user.ID, 9999, "a")
		assert.ErrorIs(t, err, util.ErrQuizNotFound)
	})

	t.Run("letra fora de a-d", func(t *testing.T) {
		_, err := svc.Create(user.ID, quiz.ID, "e")
		assert.ErrorIs(t, err, util.ErrInvalidAnswerLetter)
	})
}
