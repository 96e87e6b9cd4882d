package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoryNotFound
	}
	return category, err
}

func (s *CategoryService) Create(nome, icone string) (*model.Category, error) {
	category := &model.Category{Nome: nome, Icone: icone}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, nome, icone string) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	category.Nome = nome
	category.Icone = icone
	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.CategoryRepo.Delete(id)
}
