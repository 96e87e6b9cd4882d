package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// PlayController serve as questões no formato de jogo, sem expor os campos
// administrativos do quiz.
type PlayController struct {
	QuizService *service.QuizService
}

func NewPlayController(quizService *service.QuizService) *PlayController {
	return &PlayController{QuizService: quizService}
}

// Random godoc
// @Summary Lote de questões aleatórias para jogar
// @Tags jogo
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.PlayQuestion
// @Router /play/quizzes/random [get]
func (c *PlayController) Random(ctx *gin.Context) {
	questions, err := c.QuizService.RandomBatch()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, questions)
}

// RandomByCategory godoc
// @Summary Lote de questões aleatórias de uma categoria
// @Tags jogo
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da categoria"
// @Success 200 {array} model.PlayQuestion
// @Failure 404 {object} util.Response
// @Router /play/quizzes/by-category/{id} [get]
func (c *PlayController) RandomByCategory(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	questions, err := c.QuizService.RandomBatchByCategory(id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCategoryNotFound):
			util.NotFound(ctx, "Categoria não encontrada")
		case errors.Is(err, util.ErrNoQuestions):
			util.NotFound(ctx, "Nenhuma pergunta para esta categoria")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, questions)
}

// Show godoc
// @Summary Uma questão no formato de jogo
// @Tags jogo
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Success 200 {object} model.PlayQuestion
// @Failure 404 {object} util.Response
// @Router /play/quizzes/{id} [get]
func (c *PlayController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	question, err := c.QuizService.PlayQuestion(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, question)
}
