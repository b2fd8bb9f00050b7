package controllers

import (
	"context"
	"net/http"

	"WellnessHub/middleware"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

type TreatmentService interface {
	Create(ctx context.Context, treatment models.Treatment) (*models.Treatment, error)
	List(ctx context.Context, page models.PageRequest) (models.Paginated[models.Treatment], error)
	Update(ctx context.Context, rawID string, patch models.TreatmentPatch) (*models.Treatment, error)
	Delete(ctx context.Context, rawID string) (*models.Treatment, error)
}

type TreatmentController struct {
	service TreatmentService
}

func NewTreatmentController(service TreatmentService) *TreatmentController {
	return &TreatmentController{service: service}
}

type createTreatmentRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Resources   []string `json:"resources"`
	Benefits    []string `json:"benefits"`
	ImgURL      string   `json:"imgUrl"`
}

func (ctl *TreatmentController) Routes(api *gin.RouterGroup) {
	treatment := api.Group("treatments")
	{
		treatment.POST("/create", middleware.Authorize(role.Admin), middleware.Handle(ctl.Create))
		treatment.GET("", middleware.Authorize(role.User, role.Admin, role.Therapist, role.Doctor), middleware.Handle(ctl.FetchAll))
		treatment.PUT("/:treatmentId/update", middleware.Authorize(role.Admin), middleware.Handle(ctl.Update))
		treatment.DELETE("/:treatmentId/delete", middleware.Authorize(role.Admin), middleware.Handle(ctl.Delete))
	}
}

func (ctl *TreatmentController) Create(c *gin.Context) error {
	var req createTreatmentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	treatment, err := ctl.service.Create(c.Request.Context(), models.Treatment{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Resources:   req.Resources,
		Benefits:    req.Benefits,
		ImgURL:      req.ImgURL,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, util.TREATMENT_CREATED, treatment)
}

func (ctl *TreatmentController) FetchAll(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := ctl.service.List(c.Request.Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.TREATMENTS_FETCHED, res)
}

func (ctl *TreatmentController) Update(c *gin.Context) error {
	var patch models.TreatmentPatch
	if err := bindJSON(c, &patch); err != nil {
		return err
	}
	treatment, err := ctl.service.Update(c.Request.Context(), c.Param("treatmentId"), patch)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.TREATMENT_UPDATED, treatment)
}

func (ctl *TreatmentController) Delete(c *gin.Context) error {
	treatment, err := ctl.service.Delete(c.Request.Context(), c.Param("treatmentId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.TREATMENT_DELETED, treatment)
}
