package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// swagger:model RankingRequest
type RankingRequest struct {
	UsuarioID uint `json:"usuario_id" binding:"required"`
	Pontuacao int  `json:"pontuacao" binding:"min=0"`
}

// swagger:model RankingUpdateRequest
type RankingUpdateRequest struct {
	Pontuacao int `json:"pontuacao" binding:"min=0"`
}

// Leaderboard godoc
// @Summary Placar geral de usuários por pontuação total
// @Tags ranking
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.LeaderboardEntry
// @Router /ranking [get]
func (c *RankingController) Leaderboard(ctx *gin.Context) {
	entries, err := c.RankingService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, entries)
}

// Show godoc
// @Summary Busca uma linha do ranking pelo ID
// @Tags ranking
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da linha"
// @Success 200 {object} model.RankingEntry
// @Failure 404 {object} util.Response
// @Router /ranking/{id} [get]
func (c *RankingController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	entry, err := c.RankingService.GetEntry(id)
	if err != nil {
		if errors.Is(err, util.ErrRankingNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, entry)
}

// Create godoc
// @Summary Cria uma linha do ranking
// @Tags ranking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RankingRequest true "Dados da linha"
// @Success 201 {object} model.RankingEntry
// @Router /ranking [post]
func (c *RankingController) Create(ctx *gin.Context) {
	var req RankingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	entry, err := c.RankingService.CreateEntry(req.UsuarioID, req.Pontuacao)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.ValidationError(ctx, map[string][]string{
				"usuario_id": {"O usuário selecionado não existe."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, entry)
}

// Update godoc
// @Summary Sobrescreve a pontuação de uma linha do ranking
// @Description A pontuação é substituída, não somada
// @Tags ranking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da linha"
// @Param body body RankingUpdateRequest true "Nova pontuação"
// @Success 200 {object} model.RankingEntry
// @Failure 404 {object} util.Response
// @Router /ranking/{id} [put]
func (c *RankingController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req RankingUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	entry, err := c.RankingService.UpdateEntry(id, req.Pontuacao)
	if err != nil {
		if errors.Is(err, util.ErrRankingNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, entry)
}

// Delete godoc
// @Summary Remove uma linha do ranking
// @Tags ranking
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da linha"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /ranking/{id} [delete]
func (c *RankingController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.RankingService.DeleteEntry(id); err != nil {
		if errors.Is(err, util.ErrRankingNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Registro excluído com sucesso!"})
}
