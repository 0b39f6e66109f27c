package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"autoshop-backend/controllers"
	"autoshop-backend/middleware"
	"autoshop-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	cc *controllers.CustomerController,
	fc *controllers.FinanceController,
	apc *controllers.AppointmentController,
	pc *controllers.ProfileController,
	cat *controllers.CatalogController,
	uc *controllers.UploadController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/admin/login", ac.AdminLogin)
		}

		// Public: services listing, checkout quote, booking form.
		api.GET("/services", cat.GetServices)
		api.GET("/pricing/quote", cat.GetQuote)
		api.POST("/bookings", bc.CreateBooking)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(jwtSecret))
		{
			authed.GET("/profile", pc.GetProfile)
			authed.PUT("/profile", pc.UpdateProfile)
			authed.POST("/uploads", uc.Upload)
		}

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireRole(utils.RoleAdmin))
		{
			admin.GET("/bookings", bc.GetBookings)
			admin.GET("/bookings/:id", bc.GetBookingDetails)
			admin.PATCH("/bookings/:id/status", bc.UpdateStatus)
			admin.POST("/bookings/:id/payment", bc.ProcessPayment)
			admin.POST("/bookings/:id/photos", bc.AttachPhoto)

			admin.GET("/customers", cc.GetCustomers)
			admin.GET("/finance/report", fc.GetReport)

			appointments := admin.Group("/admin/appointments")
			{
				appointments.GET("", apc.GetAppointments)
				appointments.POST("", apc.CreateAppointment)
				appointments.PUT("/:id", apc.UpdateAppointment)
				appointments.DELETE("/:id", apc.DeleteAppointment)
			}
		}
	}

	return r
}
