package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "ranking:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardEntry é a linha do placar geral (GET /ranking).
type LeaderboardEntry struct {
	Name           string `json:"name"`
	PontuacaoTotal int    `json:"pontuacao_total"`
}

type RankingService struct {
	RankingRepo *repository.RankingRepository
	UserRepo    *repository.UserRepository
	RDB         *redis.Client
}

func NewRankingService(rankingRepo *repository.RankingRepository, userRepo *repository.UserRepository, rdb *redis.Client) *RankingService {
	return &RankingService{
		RankingRepo: rankingRepo,
		UserRepo:    userRepo,
		RDB:         rdb,
	}
}

// Leaderboard retorna todos os usuários em ordem decrescente de pontuação,
// com cache curto no Redis para aliviar a listagem completa.
func (s *RankingService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.RDB != nil {
		if cached, err := s.RDB.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.ListForRanking()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Name:           u.Name,
			PontuacaoTotal: u.PontuacaoTotal,
		})
	}

	if s.RDB != nil {
		if payload, err := json.Marshal(entries); err == nil {
			s.RDB.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *RankingService) ListEntries() ([]model.RankingEntry, error) {
	return s.RankingRepo.FindAllOrdered()
}

func (s *RankingService) GetEntry(id uint) (*model.RankingEntry, error) {
	entry, err := s.RankingRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRankingNotFound
	}
	return entry, err
}

func (s *RankingService) CreateEntry(usuarioID uint, pontuacao int) (*model.RankingEntry, error) {
	if _, err := s.UserRepo.FindByID(usuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	entry := &model.RankingEntry{
		UsuarioID:         usuarioID,
		Pontuacao:         pontuacao,
		UltimaAtualizacao: time.Now(),
	}
	if err := s.RankingRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry sobrescreve a pontuação (não soma), mantendo o comportamento
// original do produto.
func (s *RankingService) UpdateEntry(id uint, pontuacao int) (*model.RankingEntry, error) {
	entry, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	entry.Pontuacao = pontuacao
	entry.UltimaAtualizacao = time.Now()
	if err := s.RankingRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *RankingService) DeleteEntry(id uint) error {
	if _, err := s.GetEntry(id); err != nil {
		return err
	}
	return s.RankingRepo.Delete(id)
}
