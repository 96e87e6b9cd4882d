package repository

import (
	"concurso_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type StudyPlanRepository struct {
	DB *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: db}
}

// Todas as consultas são restritas ao usuário dono do plano.

func (r *StudyPlanRepository) FindByUser(userID uint) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.DB.Where("user_id = ?", userID).Order("study_date ASC").Find(&plans).Error
	return plans, err
}

func (r *StudyPlanRepository) FindByIDAndUser(id, userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	return &plan, err
}

func (r *StudyPlanRepository) Create(plan *model.StudyPlan) error {
	return r.DB.Create(plan).Error
}

func (r *StudyPlanRepository) Update(plan *model.StudyPlan) error {
	return r.DB.Save(plan).Error
}

func (r *StudyPlanRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.StudyPlan{}).Error
}
