package service

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/repository"
	"concurso_quiz_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PlayBatchSize é o tamanho máximo do lote servido pelos endpoints de jogo.
const PlayBatchSize = 5

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	CategoryRepo *repository.CategoryRepository
	AnswerRepo   *repository.UserAnswerRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, categoryRepo *repository.CategoryRepository, answerRepo *repository.UserAnswerRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		CategoryRepo: categoryRepo,
		AnswerRepo:   answerRepo,
	}
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) Get(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *QuizService) ListByUser(userID uint) ([]model.Quiz, error) {
	return s.QuizRepo.FindByUser(userID)
}

func (s *QuizService) Create(quiz *model.Quiz) error {
	exists, err := s.CategoryRepo.Exists(quiz.CategoriaID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrCategoryNotFound
	}

	quiz.RespostaCorreta = strings.ToLower(quiz.RespostaCorreta)
	return s.QuizRepo.Create(quiz)
}

// Update só é permitido ao criador do quiz.
func (s *QuizService) Update(id, userID uint, updated *model.Quiz) (*model.Quiz, error) {
	quiz, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if quiz.UserID != userID {
		return nil, util.ErrNotQuizOwner
	}

	exists, err := s.CategoryRepo.Exists(updated.CategoriaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrCategoryNotFound
	}

	quiz.CategoriaID = updated.CategoriaID
	quiz.Pergunta = updated.Pergunta
	quiz.AlternativaA = updated.AlternativaA
	quiz.AlternativaB = updated.AlternativaB
	quiz.AlternativaC = updated.AlternativaC
	quiz.AlternativaD = updated.AlternativaD
	quiz.RespostaCorreta = strings.ToLower(updated.RespostaCorreta)

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Delete só é permitido ao criador do quiz; o quiz permanece intacto em caso de 403.
func (s *QuizService) Delete(id, userID uint) error {
	quiz, err := s.Get(id)
	if err != nil {
		return err
	}

	if quiz.UserID != userID {
		return util.ErrNotQuizOwner
	}

	return s.QuizRepo.Delete(id)
}

// RandomBatch retorna até PlayBatchSize questões aleatórias no formato de jogo.
func (s *QuizService) RandomBatch() ([]model.PlayQuestion, error) {
	quizzes, err := s.QuizRepo.Random(PlayBatchSize)
	if err != nil {
		return nil, err
	}
	return formatPlayQuestions(quizzes), nil
}

// RandomBatchByCategory valida a categoria e exige ao menos uma questão nela.
func (s *QuizService) RandomBatchByCategory(categoryID uint) ([]model.PlayQuestion, error) {
	exists, err := s.CategoryRepo.Exists(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.ErrCategoryNotFound
	}

	quizzes, err := s.QuizRepo.RandomByCategory(categoryID, PlayBatchSize)
	if err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, util.ErrNoQuestions
	}
	return formatPlayQuestions(quizzes), nil
}

// PlayQuestion retorna uma única questão no formato de jogo.
func (s *QuizService) PlayQuestion(id uint) (*model.PlayQuestion, error) {
	quiz, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	q := formatPlayQuestion(quiz)
	return &q, nil
}

// LastAnsweredQuiz retorna o último quiz respondido pelo usuário e a taxa real
// de acerto dele naquele quiz (0-100).
func (s *QuizService) LastAnsweredQuiz(userID uint) (*model.Quiz, int, error) {
	last, err := s.AnswerRepo.FindLastByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, util.ErrNoAnsweredQuiz
	}
	if err != nil {
		return nil, 0, err
	}
	if last.Quiz == nil {
		return nil, 0, util.ErrNoAnsweredQuiz
	}

	total, correct, err := s.AnswerRepo.CountByUserAndQuiz(userID, last.QuizID)
	if err != nil {
		return nil, 0, err
	}

	score := 0
	if total > 0 {
		score = int(correct * 100 / total)
	}
	return last.Quiz, score, nil
}

func formatPlayQuestion(quiz *model.Quiz) model.PlayQuestion {
	return model.PlayQuestion{
		ID:       quiz.ID,
		Pergunta: quiz.Pergunta,
		Alternativas: map[string]string{
			"a": quiz.AlternativaA,
			"b": quiz.AlternativaB,
			"c": quiz.AlternativaC,
			"d": quiz.AlternativaD,
		},
		RespostaCorreta: strings.ToLower(quiz.RespostaCorreta),
	}
}

func formatPlayQuestions(quizzes []model.Quiz) []model.PlayQuestion {
	questions := make([]model.PlayQuestion, 0, len(quizzes))
	for i := range quizzes {
		questions = append(questions, formatPlayQuestion(&quizzes[i]))
	}
	return questions
}
