package routes

import (
	"log"

	"WellnessHub/cache"
	"WellnessHub/config"
	"WellnessHub/events"
	"WellnessHub/media"
	"WellnessHub/middleware"
	"WellnessHub/repository"
	"WellnessHub/services"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies is built once at startup and handed to every controller.
type Dependencies struct {
	Verifier   middleware.TokenVerifier
	Auth       *services.AuthService
	Bookings   *services.BookingService
	Cabins     *services.CabinService
	Treatments *services.TreatmentService
	Users      *services.UserService
	Staff      *services.StaffService
	Images     *services.ImageService
}

/*
* Repositories read from the connected database
* Redis, RabbitMQ and Cloudinary are optional and fall back to no-ops
 */
func BuildDependencies(cfg config.Settings, database *mongo.Database, rdb *redis.Client) *Dependencies {
	users := repository.NewUserRepository(database)
	bookings := repository.NewBookingRepository(database, users)
	cabins := repository.NewCabinRepository(database)
	treatments := repository.NewTreatmentRepository(database)

	var (
		entityCache   cache.Cache   = cache.Noop{}
		loginAttempts cache.Counter = cache.Noop{}
	)
	if rdb != nil {
		redisCache := cache.NewRedisCache(rdb, cfg.CacheTTL)
		entityCache = redisCache
		loginAttempts = redisCache
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewRabbitPublisher(cfg.AMQPURL, cfg.EventsExchange)
		if err != nil {
			log.Println("Booking events disabled, RabbitMQ unavailable: ", err)
		} else {
			publisher = p
		}
	}

	var uploader media.Uploader = media.Disabled{}
	if cfg.CloudinaryConfigured() {
		u, err := media.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			log.Println("Image uploads disabled, Cloudinary config rejected: ", err)
		} else {
			uploader = u
		}
	}

	return &Dependencies{
		Verifier:   middleware.JWTVerifier{},
		Auth:       services.NewAuthService(users, loginAttempts),
		Bookings:   services.NewBookingService(bookings, entityCache, publisher),
		Cabins:     services.NewCabinService(cabins, entityCache),
		Treatments: services.NewTreatmentService(treatments),
		Users:      services.NewUserService(users),
		Staff:      services.NewStaffService(users),
		Images:     services.NewImageService(uploader),
	}
}
