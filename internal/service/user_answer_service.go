package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type UserAnswerService struct {
	AnswerRepo *repository.UserAnswerRepository
	QuizRepo   *repository.QuizRepository
}

func NewUserAnswerService(answerRepo *repository.UserAnswerRepository, quizRepo *repository.QuizRepository) *UserAnswerService {
	return &UserAnswerService{
		AnswerRepo: answerRepo,
		QuizRepo:   quizRepo,
	}
}

func (s *UserAnswerService) List() ([]model.UserAnswer, error) {
	return s.AnswerRepo.FindAll()
}

func (s *UserAnswerService) Get(id uint) (*model.UserAnswer, error) {
	answer, err := s.AnswerRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAnswerNotFound
	}
	return answer, err
}

// Create registra a resposta; o acerto é recalculado no servidor contra a
// letra correta armazenada, sem confiar no valor vindo do cliente.
func (s *UserAnswerService) Create(userID, quizID uint, respostaDada string) (*model.UserAnswer, error) {
	letter, err := normalizeLetter(respostaDada)
	if err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	answer := &model.UserAnswer{
		UserID:       userID,
		QuizID:       quizID,
		RespostaDada: letter,
		Acertou:      letter == strings.ToLower(quiz.RespostaCorreta),
	}

	if err := s.AnswerRepo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *UserAnswerService) Update(id uint, respostaDada string) (*model.UserAnswer, error) {
	letter, err := normalizeLetter(respostaDada)
	if err != nil {
		return nil, err
	}

	answer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(answer.QuizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	answer.RespostaDada = letter
	answer.Acertou = letter == strings.ToLower(quiz.RespostaCorreta)

	if err := s.AnswerRepo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *UserAnswerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.AnswerRepo.Delete(id)
}

// normalizeLetter valida a letra fora do binding HTTP, para chamadores
// diretos como o jogador de terminal.
func normalizeLetter(respostaDada string) (string, error) {
	letter := strings.ToLower(respostaDada)
	switch letter {
	case "a", "b", "c", "d":
		return letter, nil
	}
	return "", util.ErrInvalidAnswerLetter
}
