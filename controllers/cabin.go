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

type CabinService interface {
	Create(ctx context.Context, name, description, imageURL string) (*models.Cabin, error)
	List(ctx context.Context, page models.PageRequest) (models.Paginated[models.Cabin], error)
	GetByID(ctx context.Context, rawID string) (*models.Cabin, error)
	Update(ctx context.Context, rawID string, patch models.CabinPatch) (*models.Cabin, error)
	Delete(ctx context.Context, rawID string) (*models.Cabin, error)
}

type CabinController struct {
	service CabinService
}

func NewCabinController(service CabinService) *CabinController {
	return &CabinController{service: service}
}

type createCabinRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
}

func (ctl *CabinController) Routes(api *gin.RouterGroup) {
	cabin := api.Group("cabins", middleware.Authorize(role.Admin))
	{
		cabin.POST("/create", middleware.Handle(ctl.Create))
		cabin.GET("", middleware.Handle(ctl.FetchAll))
		cabin.GET("/:cabinId", middleware.Handle(ctl.FetchByID))
		cabin.PUT("/:cabinId/update", middleware.Handle(ctl.Update))
		cabin.DELETE("/:cabinId/delete", middleware.Handle(ctl.Delete))
	}
}

func (ctl *CabinController) Create(c *gin.Context) error {
	var req createCabinRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	cabin, err := ctl.service.Create(c.Request.Context(), req.Name, req.Description, req.ImageURL)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, util.CABIN_CREATED, cabin)
}

func (ctl *CabinController) FetchAll(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := ctl.service.List(c.Request.Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.CABINS_FETCHED, res)
}

func (ctl *CabinController) FetchByID(c *gin.Context) error {
	cabin, err := ctl.service.GetByID(c.Request.Context(), c.Param("cabinId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.CABIN_FETCHED, cabin)
}

func (ctl *CabinController) Update(c *gin.Context) error {
	var patch models.CabinPatch
	if err := bindJSON(c, &patch); err != nil {
		return err
	}
	cabin, err := ctl.service.Update(c.Request.Context(), c.Param("cabinId"), patch)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.CABIN_UPDATED, cabin)
}

func (ctl *CabinController) Delete(c *gin.Context) error {
	cabin, err := ctl.service.Delete(c.Request.Context(), c.Param("cabinId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.CABIN_DELETED, cabin)
}
