package util

import "errors"

var (
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailRegistered     = errors.New("este e-mail já está registrado")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrCategoryNotFound    = errors.New("categoria não encontrada")
	ErrContentNotFound     = errors.New("conteúdo não encontrado")
	ErrQuizNotFound        = errors.New("quiz não encontrado")
	ErrNoQuestions         = errors.New("nenhuma pergunta para esta categoria")
	ErrNotQuizOwner        = errors.New("não autorizado a alterar este quiz")
	ErrFavoriteNotFound    = errors.New("favorito não encontrado")
	ErrRankingNotFound     = errors.New("registro de ranking não encontrado")
	ErrAnswerNotFound      = errors.New("registro de resposta não encontrado")
	ErrStudyPlanNotFound   = errors.New("plano de estudo não encontrado")
	ErrNoAnsweredQuiz      = errors.New("nenhum quiz respondido ainda")
	ErrInvalidAnswerLetter = errors.New("resposta deve ser a, b, c ou d")
)
