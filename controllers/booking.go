package controllers

import (
	"context"
	"net/http"

	"WellnessHub/middleware"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/services"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

type BookingService interface {
	Create(ctx context.Context, actor models.Actor, in services.CreateBookingInput) (*models.Booking, error)
	GetByID(ctx context.Context, actor models.Actor, rawID string) (*models.Booking, error)
	List(ctx context.Context, filter services.BookingListFilter, page models.PageRequest) (models.Paginated[models.Booking], error)
	MyBookings(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error)
	CheckedInForDoctor(ctx context.Context, page models.PageRequest) (models.Paginated[models.Booking], error)
	Today(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error)
	Tomorrow(ctx context.Context, actor models.Actor, page models.PageRequest) (models.Paginated[models.Booking], error)
	SetStatus(ctx context.Context, rawID, rawStatus string) (*models.Booking, error)
	UpdateDetails(ctx context.Context, actor models.Actor, rawID string, in services.BookingDetailsInput) (*models.Booking, error)
	SoftDelete(ctx context.Context, actor models.Actor, rawID string) error
}

type BookingController struct {
	service BookingService
}

func NewBookingController(service BookingService) *BookingController {
	return &BookingController{service: service}
}

type createBookingRequest struct {
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Description  string `json:"description"`
}

type bookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type bookingDetailsRequest struct {
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	Description  *string `json:"description"`
}

func (ctl *BookingController) Routes(api *gin.RouterGroup) {
	booking := api.Group("bookings")
	{
		booking.POST("/create", middleware.Authorize(role.User), middleware.Handle(ctl.Create))
		booking.GET("/get-all", middleware.Authorize(role.Admin), middleware.Handle(ctl.FetchAll))
		booking.GET("/my", middleware.Authorize(role.User), middleware.Handle(ctl.FetchMine))
		booking.GET("/checked-in", middleware.Authorize(role.Doctor), middleware.Handle(ctl.FetchCheckedIn))
		booking.GET("/today", middleware.Authorize(role.User), middleware.Handle(ctl.FetchToday))
		booking.GET("/tomorrow", middleware.Authorize(role.User), middleware.Handle(ctl.FetchTomorrow))
		booking.GET("/fetch/:bookingId", middleware.Authorize(role.User, role.Admin), middleware.Handle(ctl.FetchByID))
		booking.PUT("/:bookingId/status", middleware.Authorize(role.Admin), middleware.Handle(ctl.UpdateStatus))
		booking.PUT("/:bookingId/details", middleware.Authorize(role.User, role.Admin), middleware.Handle(ctl.UpdateDetails))
		booking.DELETE("/:bookingId", middleware.Authorize(role.User, role.Admin), middleware.Handle(ctl.Delete))
	}
}

/*
* Bind JSON
* And pass to the service with the caller as owner
 */
func (ctl *BookingController) Create(c *gin.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var req createBookingRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	booking, err := ctl.service.Create(c.Request.Context(), actor, services.CreateBookingInput{
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, util.BOOKING_CREATED, booking)
}

/*
* Read page, limit, search, startDate and endDate from the query
* Pass to the service
 */
func (ctl *BookingController) FetchAll(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	filter := services.BookingListFilter{
		Search:    c.Query("search"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	res, err := ctl.service.List(c.Request.Context(), filter, page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKINGS_FETCHED, res)
}

func (ctl *BookingController) FetchMine(c *gin.Context) error {
	return ctl.ownPage(c, ctl.service.MyBookings)
}

func (ctl *BookingController) FetchToday(c *gin.Context) error {
	return ctl.ownPage(c, ctl.service.Today)
}

func (ctl *BookingController) FetchTomorrow(c *gin.Context) error {
	return ctl.ownPage(c, ctl.service.Tomorrow)
}

func (ctl *BookingController) FetchCheckedIn(c *gin.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := ctl.service.CheckedInForDoctor(c.Request.Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKINGS_FETCHED, res)
}

func (ctl *BookingController) ownPage(c *gin.Context, fetch func(context.Context, models.Actor, models.PageRequest) (models.Paginated[models.Booking], error)) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	res, err := fetch(c.Request.Context(), actor, page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKINGS_FETCHED, res)
}

func (ctl *BookingController) FetchByID(c *gin.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	booking, err := ctl.service.GetByID(c.Request.Context(), actor, c.Param("bookingId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKING_FETCHED, booking)
}

func (ctl *BookingController) UpdateStatus(c *gin.Context) error {
	var req bookingStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	booking, err := ctl.service.SetStatus(c.Request.Context(), c.Param("bookingId"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKING_STATUS_UPDATED, booking)
}

/*
* Only keys present in the body are applied
* An explicit empty description is kept
 */
func (ctl *BookingController) UpdateDetails(c *gin.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var req bookingDetailsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	booking, err := ctl.service.UpdateDetails(c.Request.Context(), actor, c.Param("bookingId"), services.BookingDetailsInput{
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKING_DETAILS_UPDATED, booking)
}

func (ctl *BookingController) Delete(c *gin.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	if err := ctl.service.SoftDelete(c.Request.Context(), actor, c.Param("bookingId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, util.BOOKING_DELETED, nil)
}
