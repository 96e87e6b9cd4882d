package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
)

type FavoriteService struct {
	FavoriteRepo *repository.FavoriteRepository
	QuizRepo     *repository.QuizRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, quizRepo *repository.QuizRepository) *FavoriteService {
	return &FavoriteService{
		FavoriteRepo: favoriteRepo,
		QuizRepo:     quizRepo,
	}
}

/// Favorite é idempotente: favoritar duas vezes devolve a mesma linha.
func (s *FavoriteService) Favorite(userID, quizID uint) (*model.Favorite, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		return nil, util.ErrQuizNotFound
	}
	return s.FavoriteRepo.FirstOrCreate(userID, quizID)
}

func (s *FavoriteService) Unfavorite(userID, quizID uint) error {
	deleted, err := s.FavoriteRepo.Delete(userID, quizID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) ListQuizzes(userID uint) ([]model.Quiz, error) {
	return s.FavoriteRepo.FindQuizzesByUser(userID)
}
