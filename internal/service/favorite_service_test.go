package service

import (
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteServiceIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewQuizRepository(db),
	)

	user := seedUser(t, db, "ana@example.com")
	category := seedCategory(t, db, "Informática")
	quiz := seedQuiz(t, db, user.ID, category.ID, "a")

	first, err := svc.Favorite(user.ID, quiz.ID)
	require.NoError(t, err)

	// Favoritar de novo devolve a mesma linha, sem duplicar.
	second, err := svc.Favorite(user.ID, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	favorites, err := svc.ListQuizzes(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, quiz.ID, favorites[0].ID)
}

func TestFavoriteServiceUnfavorite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewQuizRepository(db),
	)

	user := seedUser(t, db, "ana@example.com")
	category := seedCategory(t, db, "Informática")
	quiz := seedQuiz(t, db, user.ID, category.ID, "a")

	_, err := svc.Favorite(user.ID, quiz.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unfavorite(user.ID, quiz.ID))

	favorites, err := svc.ListQuizzes(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Desfavoritar o que não está favoritado é not found.
	err = svc.Unfavorite(user.ID, quiz.ID)
	assert.ErrorIs(t, err, util.ErrFavoriteNotFound)
}

func TestFavoriteServiceRequiresQuiz(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewQuizRepository(db),
	)

	user := seedUser(t, db, "ana@example.com")

	_, err := svc.Favorite(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}
