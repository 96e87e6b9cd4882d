package controller

import (
	"concurso_quiz_backend/internal/service"
	"concurso_quiz_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	PlanService *service.StudyPlanService
}

func NewStudyPlanController(planService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{PlanService: planService}
}

// swagger:model StudyPlanRequest
type StudyPlanRequest struct {
	Disciplina string `json:"disciplina" binding:"required,max=255"`
	Conteudo   string `json:"conteudo" binding:"required"`
	StudyDate  string `json:"study_date" binding:"required"`
}

// swagger:model StudyPlanUpdateRequest
type StudyPlanUpdateRequest struct {
	Disciplina *string `json:"disciplina" binding:"omitempty,max=255"`
	Conteudo   *string `json:"conteudo"`
	StudyDate  *string `json:"study_date"`
}

func parseStudyDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// List godoc
// @Summary Lista os planos de estudo do usuário autenticado
// @Tags planos de estudo
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.StudyPlan
// @Router /study-plans [get]
func (c *StudyPlanController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	plans, err := c.PlanService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(200, plans)
}

// Create godoc
// @Summary Cria um plano de estudo para o usuário autenticado
// @Tags planos de estudo
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StudyPlanRequest true "Dados do plano"
// @Success 201 {object} model.StudyPlan
// @Failure 422 {object} map[string]interface{}
// @Router /study-plans [post]
func (c *StudyPlanController) Create(ctx *gin.Context) {
	var req StudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studyDate, err := parseStudyDate(req.StudyDate)
	if err != nil {
		util.ValidationError(ctx, map[string][]string{
			"study_date": {"O campo study_date deve ser uma data válida (AAAA-MM-DD)."},
		})
		return
	}

	plan, err := c.PlanService.Create(claims.UserID, req.Disciplina, req.Conteudo, studyDate)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(201, plan)
}

// Update godoc
// @Summary Atualiza um plano de estudo do usuário autenticado
// @Description Planos de outros usuários respondem 404, nunca 403
// @Tags planos de estudo
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do plano"
// @Param body body StudyPlanUpdateRequest true "Campos a atualizar"
// @Success 200 {object} model.StudyPlan
// @Failure 404 {object} util.Response
// @Router /study-plans/{id} [put]
func (c *StudyPlanController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	var req StudyPlanUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var studyDate *time.Time
	if req.StudyDate != nil {
		parsed, err := parseStudyDate(*req.StudyDate)
		if err != nil {
			util.ValidationError(ctx, map[string][]string{
				"study_date": {"O campo study_date deve ser uma data válida (AAAA-MM-DD)."},
			})
			return
		}
		studyDate = &parsed
	}

	plan, err := c.PlanService.Update(id, claims.UserID, req.Disciplina, req.Conteudo, studyDate)
	if err != nil {
		if errors.Is(err, util.ErrStudyPlanNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(200, plan)
}

// Delete godoc
// @Summary Remove um plano de estudo do usuário autenticado
// @Tags planos de estudo
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do plano"
// @Success 204 "Sem conteúdo"
// @Failure 404 {object} util.Response
// @Router /study-plans/{id} [delete]
func (c *StudyPlanController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PlanService.Delete(id, claims.UserID); err != nil {
		if errors.Is(err, util.ErrStudyPlanNotFound) {
			util.NotFound(ctx, "Registro não encontrado")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Status(204)
}
