package repository

import (
	"concurso_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByUser(userID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Categoria").Where("user_id = ?", userID).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}

// Random retorna até limit quizzes em ordem aleatória do banco.
// A ordem devolvida é a ordem de jogo; o cliente não reembaralha.
func (r *QuizRepository) Random(limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("RAND()").Limit(limit).Find(&quizzes).Error
	return quizzes, err
}

// RandomByCategory retorna até limit quizzes aleatórios de uma categoria.
func (r *QuizRepository) RandomByCategory(categoryID uint, limit int) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("categoria_id = ?", categoryID).
		Order("RAND()").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).Where("categoria_id = ?", categoryID).Count(&count).Error
	return count, err
}
