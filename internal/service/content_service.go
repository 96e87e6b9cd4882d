package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ContentService struct {
	ContentRepo  *repository.ContentRepository
	CategoryRepo *repository.CategoryRepository
}

func NewContentService(contentRepo *repository.ContentRepository, categoryRepo *repository.CategoryRepository) *ContentService {
	return &ContentService{
		ContentRepo:  contentRepo,
		CategoryRepo: categoryRepo,
	}
}

func (s *ContentService) List() ([]model.Content, error) {
	return s.ContentRepo.FindAll()
}

func (s *ContentService) Get(id uint) (*model.Content, error) {
	content, err := s.ContentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrContentNotFound
	}
	return content, err
}

// Create valida a FK de categoria antes de gravar.
func (s *ContentService) Create(content *model.Content) error {
	exists, err := s.CategoryRepo.Exists(content.CategoriaID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrCategoryNotFound
	}
	return s.ContentRepo.Create(content)
}

func (s *ContentService) Update(id uint, titulo, descricao string, link *string, categoriaID uint) (*model.Content, error) {
	content, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.CategoryRepo.Exists(categoriaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrCategoryNotFound
	}

	content.Titulo = titulo
	content.Descricao = descricao
	content.Link = link
	content.CategoriaID = categoriaID
	if err := s.ContentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.ContentRepo.Delete(id)
}
