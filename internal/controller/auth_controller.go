package controller

import (
	"concurso_quiz_backend/internal/model"
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=4"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"pontuacao_total": user.PontuacaoTotal,
	}
}

// Register godoc
// @Summary Registra um novo usuário
// @Description Cria a conta e já devolve um token de acesso
// @Tags autenticação
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Dados de registro"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} util.Response "E-mail já registrado"
// @Failure 422 {object} map[string]interface{}
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	token, err := c.AuthService.Register(user)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.ValidationError(ctx, map[string][]string{
				"email": {"Este e-mail já está registrado."},
			})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(201, gin.H{
		"user":         userPayload(user),
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Login godoc
// @Summary Autentica um usuário
// @Description Valida as credenciais e devolve token + dados do usuário
// @Tags autenticação
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credenciais"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.Response "Credenciais inválidas"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, "Credenciais inválidas")
		return
	}

	ctx.JSON(200, gin.H{
		"message":      "Login bem-sucedido",
		"access_token": token,
		"token_type":   "Bearer",
		"user":         userPayload(user),
	})
}

// Logout godoc
// @Summary Revoga o token atual
// @Tags autenticação
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if err := c.AuthService.Logout(ctx.Request.Context(), token); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, gin.H{"message": "Logout successful"})
}

// Me godoc
// @Summary Perfil do usuário autenticado
// @Tags autenticação
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} util.Response
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ctx.JSON(200, userPayload(user))
}
