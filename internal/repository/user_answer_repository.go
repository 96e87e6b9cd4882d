package repository

import (
	"concurso_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserAnswerRepository struct {
	DB *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) *UserAnswerRepository {
	return &UserAnswerRepository{DB: db}
}

func (r *UserAnswerRepository) FindAll() ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.DB.Find(&answers).Error
	return answers, err
}

func (r *UserAnswerRepository) FindByID(id uint) (*model.UserAnswer, error) {
	var answer model.UserAnswer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}

func (r *UserAnswerRepository) Create(answer *model.UserAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *UserAnswerRepository) Update(answer *model.UserAnswer) error {
	return r.DB.Save(answer).Error
}

func (r *UserAnswerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserAnswer{}, id).Error
}

// FindLastByUser retorna a resposta mais recente do usuário, com o quiz carregado.
func (r *UserAnswerRepository) FindLastByUser(userID uint) (*model.UserAnswer, error) {
	var answer model.UserAnswer
	err := r.DB.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&answer).Error
	return &answer, err
}

// CountByUserAndQuiz retorna total de respostas e total de acertos do usuário
// para um quiz específico.
func (r *UserAnswerRepository) CountByUserAndQuiz(userID, quizID uint) (total int64, correct int64, err error) {
	base := r.DB.Model(&model.UserAnswer{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID)

	if err = base.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	err = r.DB.Model(&model.UserAnswer{}).
		Where("user_id = ? AND quiz_id = ? AND acertou = ?", userID, quizID, true).
		Count(&correct).Error
	return total, correct, err
}
