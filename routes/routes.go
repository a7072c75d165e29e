package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parking-backend/controllers"
	"parking-backend/middleware"
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

// SetupRouter wires controllers into the gin engine. Everything except auth
// and the health check sits behind the JWT middleware.
func SetupRouter(
	wc *controllers.WorkspaceController,
	rc *controllers.ReportController,
	cc *controllers.ClientController,
	pc *controllers.ParkingController,
	ec *controllers.ExpenseController,
	sc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		workspace := authorized.Group("/workspace")
		{
			workspace.GET("/grid", wc.GetGrid)
			workspace.GET("/client-card/:client_id", wc.GetClientCard)
			workspace.POST("/client-card/:client_id", wc.SaveClientCard)
		}

		authorized.GET("/reports", rc.GetReport)

		clients := authorized.Group("/clients")
		{
			clients.GET("", cc.GetClients)
			clients.POST("", cc.CreateClient)
			clients.GET("/:id", cc.GetClient)
			clients.PUT("/:id", cc.UpdateClient)
			clients.DELETE("/:id", cc.DeleteClient)
		}

		parkings := authorized.Group("/parkings")
		{
			parkings.GET("", pc.GetParkings)
			parkings.POST("", pc.CreateParking)
			parkings.DELETE("/:id", pc.DeleteParking)
		}

		spots := authorized.Group("/spots")
		{
			spots.GET("", pc.GetSpots)
			spots.POST("", pc.CreateSpot)
			spots.DELETE("/:id", pc.DeleteSpot)
		}

		bookings := authorized.Group("/bookings")
		{
			bookings.GET("/:booking_id/expenses", ec.GetExpenses)
			bookings.POST("/:booking_id/expenses", ec.CreateExpense)
		}
		authorized.DELETE("/expenses/:id", ec.DeleteExpense)

		settings := authorized.Group("/settings")
		{
			settings.GET("", sc.GetSettings)
			settings.PUT("", sc.UpdateSettings)
		}
	}

	return r
}
