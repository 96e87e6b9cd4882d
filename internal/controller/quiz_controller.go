package controller

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model QuizRequest
type QuizRequest struct {
	CategoriaID     uint   `json:"categoria_id" binding:"required"`
	Pergunta        string `json:"pergunta" binding:"required,max=500"`
	AlternativaA    string `json:"alternativa_a" binding:"required,max=255"`
	AlternativaB    string `json:"alternativa_b" binding:"required,max=255"`
	AlternativaC    string `json:"alternativa_c" binding:"required,max=255"`
	AlternativaD    string `json:"alternativa_d" binding:"required,max=255"`
	RespostaCorreta string `json:"resposta_correta" binding:"required,oneof=a b c d A B C D"`
}

func (r *QuizRequest) toModel() *model.Quiz {
	return &model.Quiz{
		CategoriaID:     r.CategoriaID,
		Pergunta:        r.Pergunta,
		AlternativaA:    r.AlternativaA,
		AlternativaB:    r.AlternativaB,
		AlternativaC:    r.AlternativaC,
		AlternativaD:    r.AlternativaD,
		RespostaCorreta: r.RespostaCorreta,
	}
}

// List godoc
// @Summary Lista todos os quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Quiz
// @Router /quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.QuizService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, quizzes)
}

// Show godoc
// @Summary Busca um quiz pelo ID
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	quiz, err := c.QuizService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, quiz)
}

// Create godoc
// @Summary Cria um quiz
// @Description O usuário autenticado vira o dono do quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizRequest true "Dados do quiz"
// @Success 201 {object} model.Quiz
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quiz := req.toModel()
	quiz.UserID = claims.UserID

	if err := c.QuizService.Create(quiz); err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.ValidationError(ctx, map[string][]string{
				"categoria_id": {"A categoria selecionada não existe."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, quiz)
}

// Update godoc
// @Summary Atualiza um quiz
// @Description Apenas o criador pode atualizar
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Param body body QuizRequest true "Dados do quiz"
// @Success 200 {object} model.Quiz
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quiz, err := c.QuizService.Update(id, claims.UserID, req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz não encontrado")
		case errors.Is(err, util.ErrNotQuizOwner):
			util.Forbidden(ctx, "Não autorizado para atualizar este quiz")
		case errors.Is(err, util.ErrCategoryNotFound):
			util.ValidationError(ctx, map[string][]string{
				"categoria_id": {"A categoria selecionada não existe."},
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, quiz)
}

// Delete godoc
// @Summary Remove um quiz
// @Description Apenas o criador pode excluir
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Delete(id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz não encontrado")
		case errors.Is(err, util.ErrNotQuizOwner):
			util.Forbidden(ctx, "Não autorizado para excluir este quiz")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Quiz excluído com sucesso!"})
}

// MyQuizzes godoc
// @Summary Lista os quizzes criados pelo usuário autenticado
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Quiz
// @Router /me/quizzes [get]
func (c *QuizController) MyQuizzes(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, quizzes)
}

// LastAnswered godoc
// @Summary Último quiz respondido pelo usuário com a taxa real de acerto
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /me/quizzes/last [get]
func (c *QuizController) LastAnswered(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quiz, score, err := c.QuizService.LastAnsweredQuiz(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoAnsweredQuiz) {
			// O app espera 200 com valores padrão quando não há resposta.
			ctx.JSON(200, gin.H{
				"message":   "Nenhum quiz respondido ainda.",
				"pergunta":  "Nenhum quiz recente",
				"pontuacao": 0,
			})
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{
		"message":   "Último quiz respondido encontrado.",
		"pergunta":  quiz.Pergunta,
		"pontuacao": score,
	})
}
