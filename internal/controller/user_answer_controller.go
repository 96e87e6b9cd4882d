package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type UserAnswerController struct {
	AnswerService *service.UserAnswerService
}

func NewUserAnswerController(answerService *service.UserAnswerService) *UserAnswerController {
	return &UserAnswerController{AnswerService: answerService}
}

// swagger:model UserAnswerRequest
type UserAnswerRequest struct {
	QuizID       uint   `json:"quiz_id" binding:"required"`
	RespostaDada string `json:"resposta_dada" binding:"required,oneof=a b c d A B C D"`
}

// swagger:model UserAnswerUpdateRequest
type UserAnswerUpdateRequest struct {
	RespostaDada string `json:"resposta_dada" binding:"required,oneof=a b c d A B C D"`
}

// List godoc
// @Summary Lista todas as respostas registradas
// @Tags respostas
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.UserAnswer
// @Router /respostas_usuarios [get]
func (c *UserAnswerController) List(ctx *gin.Context) {
	answers, err := c.AnswerService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, answers)
}

// Show godoc
// @Summary Busca uma resposta pelo ID
// @Tags respostas
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da resposta"
// @Success 200 {object} model.UserAnswer
// @Failure 404 {object} util.Response
// @Router /respostas_usuarios/{id} [get]
func (c *UserAnswerController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	answer, err := c.AnswerService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrAnswerNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, answer)
}

// Create godoc
// @Summary Registra a resposta do usuário a um quiz
// @Description O campo acertou é calculado no servidor contra a letra correta
// @Tags respostas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UserAnswerRequest true "Resposta"
// @Success 201 {object} model.UserAnswer
// @Failure 422 {object} map[string]interface{}
// @Router /respostas_usuarios [post]
func (c *UserAnswerController) Create(ctx *gin.Context) {
	var req UserAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	answer, err := c.AnswerService.Create(claims.UserID, req.QuizID, req.RespostaDada)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.ValidationError(ctx, map[string][]string{
				"quiz_id": {"O quiz selecionado não existe."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, answer)
}

// Update godoc
// @Summary Atualiza uma resposta registrada
// @Tags respostas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da resposta"
// @Param body body UserAnswerUpdateRequest true "Nova resposta"
// @Success 200 {object} model.UserAnswer
// @Failure 404 {object} util.Response
// @Router /respostas_usuarios/{id} [put]
func (c *UserAnswerController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req UserAnswerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	answer, err := c.AnswerService.Update(id, req.RespostaDada)
	if err != nil {
		if errors.Is(err, util.ErrAnswerNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, answer)
}

// Delete godoc
// @Summary Remove uma resposta registrada
// @Tags respostas
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da resposta"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /respostas_usuarios/{id} [delete]
func (c *UserAnswerController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.AnswerService.Delete(id); err != nil {
		if errors.Is(err, util.ErrAnswerNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Registro excluído com sucesso!"})
}
