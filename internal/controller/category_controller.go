package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
	StorageService  *service.StorageService
}

func NewCategoryController(categoryService *service.CategoryService, storageService *service.StorageService) *CategoryController {
	return &CategoryController{
		CategoryService: categoryService,
		StorageService:  storageService,
	}
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	Nome  string `json:"nome" binding:"required,max=255"`
	Icone string `json:"icone" binding:"max=255"`
}

// List godoc
// @Summary Lista todas as categorias
// @Tags categorias
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Category
// @Router /categorias [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, categories)
}

// Show godoc
// @Summary Busca uma categoria pelo ID
// @Tags categorias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} model.Category
// @Failure 404 {object} util.Response
// @Router /categorias/{id} [get]
func (c *CategoryController) Show(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	category, err := c.CategoryService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, category)
}

// Create godoc
// @Summary Cria uma categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CategoryRequest true "Dados da categoria"
// @Success 201 {object} model.Category
// @Router /categorias [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	category, err := c.CategoryService.Create(req.Nome, req.Icone)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(201, category)
}

// Update godoc
// @Summary Atualiza uma categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da categoria"
// @Param body body CategoryRequest true "Dados da categoria"
// @Success 200 {object} model.Category
// @Failure 404 {object} util.Response
// @Router /categorias/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	category, err := c.CategoryService.Update(id, req.Nome, req.Icone)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, category)
}

// Delete godoc
// @Summary Remove uma categoria
// @Tags categorias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da categoria"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /categorias/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	if err := c.CategoryService.Delete(id); err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Registro excluído com sucesso!"})
}

// UploadIcon godoc
// @Summary Envia o arquivo de ícone de uma categoria
// @Tags categorias
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param icone formData file true "Arquivo do ícone"
// @Success 200 {object} map[string]interface{}
// @Router /categorias/upload-icone [post]
func (c *CategoryController) UploadIcon(ctx *gin.Context) {
	file, err := ctx.FormFile("icone")
	if err != nil {
		util.BadRequest(ctx, "arquivo de ícone ausente")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := c.StorageService.UploadIcon(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"url": url})
}

// parseID lê o parâmetro :id da rota; responde 400 quando inválido.
func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID inválido")
		return 0, err
	}
	return uint(id), nil
}
