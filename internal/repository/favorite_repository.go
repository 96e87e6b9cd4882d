package repository

import (
	"concurso_quiz_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// FirstOrCreate devolve o favorito existente ou cria um novo.
// Chamadas repetidas com o mesmo par não geram linha duplicada.
func (r *FavoriteRepository) FirstOrCreate(userID, quizID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&favorite).Error
	if err == nil {
		return &favorite, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite = model.Favorite{UserID: userID, QuizID: quizID}
	if err := r.DB.Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Delete remove o favorito e informa se alguma linha foi de fato removida.
func (r *FavoriteRepository) Delete(userID, quizID uint) (bool, error) {
	result := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Delete(&model.Favorite{})
	return result.RowsAffected > 0, result.Error
}

// FindQuizzesByUser retorna os quizzes favoritados pelo usuário.
func (r *FavoriteRepository) FindQuizzesByUser(userID uint) ([]model.Quiz, error) {
	var favorites []model.Favorite
	err := r.DB.Preload("Quiz").Where("user_id = ?", userID).Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	quizzes := make([]model.Quiz, 0, len(favorites))
	for _, f := range favorites {
		if f.Quiz != nil {
			quizzes = append(quizzes, *f.Quiz)
		}
	}
	return quizzes, nil
}
