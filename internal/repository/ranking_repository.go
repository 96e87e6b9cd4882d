package repository

import (
	"concurso_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type RankingRepository struct {
	DB *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{DB: db}
}

func (r *RankingRepository) FindAllOrdered() ([]model.RankingEntry, error) {
	var entries []model.RankingEntry
	err := r.DB.Order("pontuacao DESC").Find(&entries).Error
	return entries, err
}

func (r *RankingRepository) FindByID(id uint) (*model.RankingEntry, error) {
	var entry model.RankingEntry
	err := r.DB.First(&entry, id).Error
	return &entry, err
}

func (r *RankingRepository) Create(entry *model.RankingEntry) error {
	return r.DB.Create(entry).Error
}

func (r *RankingRepository) Update(entry *model.RankingEntry) error {
	return r.DB.Save(entry).Error
}

func (r *RankingRepository) Delete(id uint) error {
	return r.DB.Delete(&model.RankingEntry{}, id).Error
}
