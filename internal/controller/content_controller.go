package controller

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// swagger:model ContentRequest
type ContentRequest struct {
	Titulo      string  `json:"titulo" binding:"required,max=255"`
	Descricao   string  `json:"descricao" binding:"required"`
	Link        *string `json:"link" binding:"omitempty,url,max=255"`
	CategoriaID uint    `json:"categoria_id" binding:"required"`
}

// List godoc
// @Summary Lista todos os conteúdos com suas categorias
// @Tags conteúdos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Content
// @Router /conteudos [get]
func (c *ContentController) List(ctx *gin.Context) {
	contents, err := c.ContentService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, contents)
}

// Show godoc
// @Summary Busca um conteúdo pelo ID
// @Tags conteúdos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do conteúdo"
// @Success 200 {object} model.Content
// @Failure 404 {object} util.Response
// @Router /conteudos/{id} [get]
func (c *ContentController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	content, err := c.ContentService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, content)
}

// Create godoc
// @Summary Cria um conteúdo
// @Description A categoria_id precisa referenciar uma categoria existente
// @Tags conteúdos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ContentRequest true "Dados do conteúdo"
// @Success 201 {object} model.Content
// @Failure 422 {object} map[string]interface{}
// @Router /conteudos [post]
func (c *ContentController) Create(ctx *gin.Context) {
	var req ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	content := &model.Content{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Link:        req.Link,
		CategoriaID: req.CategoriaID,
	}

	if err := c.ContentService.Create(content); err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.ValidationError(ctx, map[string][]string{
				"categoria_id": {"A categoria selecionada não existe."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, content)
}

// Update godoc
// @Summary Atualiza um conteúdo
// @Tags conteúdos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do conteúdo"
// @Param body body ContentRequest true "Dados do conteúdo"
// @Success 200 {object} model.Content
// @Failure 404 {object} util.Response
// @Router /conteudos/{id} [put]
func (c *ContentController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	content, err := c.ContentService.Update(id, req.Titulo, req.Descricao, req.Link, req.CategoriaID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "Registro não encontrado")
		case errors.Is(err, util.ErrCategoryNotFound):
			util.ValidationError(ctx, map[string][]string{
				"categoria_id": {"A categoria selecionada não existe."},
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, content)
}

// Delete godoc
// @Summary Remove um conteúdo
// @Tags conteúdos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do conteúdo"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /conteudos/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.ContentService.Delete(id); err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Registro excluído com sucesso!"})
}
