package repository

import (
	"concurso_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// FindAll carrega os conteúdos já com a categoria relacionada.
func (r *ContentRepository) FindAll() ([]model.Content, error) {
	var contents []model.Content
	err := r.DB.Preload("Categoria").Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) FindByID(id uint) (*model.Content, error) {
	var content model.Content
	err := r.DB.Preload("Categoria").First(&content, id).Error
	return &content, err
}

func (r *ContentRepository) Create(content *model.Content) error {
	return r.DB.Create(content).Error
}

func (r *ContentRepository) Update(content *model.Content) error {
	return r.DB.Save(content).Error
}

func (r *ContentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Content{}, id).Error
}
