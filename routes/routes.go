package routes

import (
	"WellnessHub/controllers"
	"WellnessHub/metrics"
	"WellnessHub/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, deps *Dependencies) {
	r.Use(middleware.RequestID(), metrics.Middleware(), middleware.ErrorHandler())

	//public
	r.GET("/metrics", metrics.Handler())
	api := r.Group("/api")
	api.GET("/health", controllers.Health)
	controllers.NewAuthController(deps.Auth).Routes(api)

	//privateroutes
	private := api.Group("", middleware.Authenticate(deps.Verifier))
	controllers.NewBookingController(deps.Bookings).Routes(private)
	controllers.NewCabinController(deps.Cabins).Routes(private)
	controllers.NewTreatmentController(deps.Treatments).Routes(private)
	controllers.NewUserController(deps.Users).Routes(private)
	controllers.NewStaffController(deps.Staff).Routes(private)
	controllers.NewImageController(deps.Images).Routes(private)
}
