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

type StaffService interface {
	Create(ctx context.Context, r role.Role, in models.StaffInput) (*models.User, error)
}

type StaffController struct {
	service StaffService
}

func NewStaffController(service StaffService) *StaffController {
	return &StaffController{service: service}
}

type createStaffRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Address     string `json:"address"`
	IDCard      string `json:"idCard"`
	Description string `json:"description"`
}

func (ctl *StaffController) Routes(api *gin.RouterGroup) {
	onlyAdmin := middleware.Authorize(role.Admin)
	api.POST("/admin/create", onlyAdmin, middleware.Handle(ctl.create(role.Admin)))
	api.POST("/doctors/create", onlyAdmin, middleware.Handle(ctl.create(role.Doctor)))
	api.POST("/therapists/create", onlyAdmin, middleware.Handle(ctl.create(role.Therapist)))
}

func (ctl *StaffController) create(r role.Role) func(c *gin.Context) error {
	return func(c *gin.Context) error {
		var req createStaffRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		user, err := ctl.service.Create(c.Request.Context(), r, models.StaffInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Password:    req.Password,
			Address:     req.Address,
			IDCard:      req.IDCard,
			Description: req.Description,
		})
		if err != nil {
			return err
		}
		return respond(c, http.StatusCreated, util.STAFF_CREATED, user)
	}
}
