package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type StudyPlanService struct {
	PlanRepo *repository.StudyPlanRepository
}

func NewStudyPlanService(planRepo *repository.StudyPlanRepository) *StudyPlanService {
	return &StudyPlanService{PlanRepo: planRepo}
}

func (s *StudyPlanService) ListByUser(userID uint) ([]model.StudyPlan, error) {
	return s.PlanRepo.FindByUser(userID)
}

func (s *StudyPlanService) Create(userID uint, disciplina, conteudo string, studyDate time.Time) (*model.StudyPlan, error) {
	plan := &model.StudyPlan{
		UserID:     userID,
		Disciplina: disciplina,
		Conteudo:   conteudo,
		StudyDate:  studyDate,
	}
	if err := s.PlanRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update aceita campos opcionais; só altera o que veio no request.
func (s *StudyPlanService) Update(id, userID uint, disciplina, conteudo *string, studyDate *time.Time) (*model.StudyPlan, error) {
	plan, err := s.PlanRepo.FindByIDAndUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudyPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if disciplina != nil {
		plan.Disciplina = *disciplina
	}
	if conteudo != nil {
		plan.Conteudo = *conteudo
	}
	if studyDate != nil {
		plan.StudyDate = *studyDate
	}

	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *StudyPlanService) Delete(id, userID uint) error {
	if _, err := s.PlanRepo.FindByIDAndUser(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudyPlanNotFound
		}
		return err
	}
	return s.PlanRepo.Delete(id, userID)
}
