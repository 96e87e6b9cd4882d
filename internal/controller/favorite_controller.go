package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	FavoriteService *service.FavoriteService
}

func NewFavoriteController(favoriteService *service.FavoriteService) *FavoriteController {
	return &FavoriteController{FavoriteService: favoriteService}
}

// Favorite godoc
// @Summary Favorita um quiz
// @Description Operação idempotente; favoritar duas vezes não duplica
// @Tags favoritos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /favoritar-quiz/{id} [post]
func (c *FavoriteController) Favorite(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	favorite, err := c.FavoriteService.Favorite(claims.UserID, id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, gin.H{
		"message":  "Quiz favoritado com sucesso!",
		"favorito": favorite,
	})
}

// Unfavorite godoc
// @Summary Remove um quiz dos favoritos
// @Tags favoritos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do quiz"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Router /desfavoritar-quiz/{id} [delete]
func (c *FavoriteController) Unfavorite(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.FavoriteService.Unfavorite(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrFavoriteNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, gin.H{"message": "Quiz removido dos favoritos com sucesso!"})
}

// MyFavorites godoc
// @Summary Lista os quizzes favoritados pelo usuário autenticado
// @Tags favoritos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Quiz
// @Router /me/favoritos/quizzes [get]
func (c *FavoriteController) MyFavorites(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.FavoriteService.ListQuizzes(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, quizzes)
}
