package router

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-api/config"
	"github.com/yeremiapane/cafe-api/controllers"
	"github.com/yeremiapane/cafe-api/database"
	"github.com/yeremiapane/cafe-api/middlewares"
	"github.com/yeremiapane/cafe-api/utils"
	"gorm.io/gorm"
)

//go:embed templates/*.html
var templatesFS embed.FS

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// gin trusts every proxy unless told otherwise; a nil list pins
	// ClientIP to the TCP peer so X-Forwarded-For cannot dodge the limiter.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		utils.ErrorLogger.Errorf("Invalid trusted proxies %v: %v", cfg.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(rateLimiter.RateLimit())

	cafeCtrl := controllers.NewCafeController(database.NewCafeStore(db), cfg.KeyVerifier())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", cafeCtrl.Home)

	// READ
	r.GET("/random", cafeCtrl.GetRandomCafe)
	r.GET("/all", cafeCtrl.GetAllCafes)
	r.GET("/search", cafeCtrl.SearchCafes)

	// CREATE
	r.GET("/add", cafeCtrl.AddCafe)
	r.POST("/add", cafeCtrl.AddCafe)

	// UPDATE
	r.GET("/update-price/:cafe_id", cafeCtrl.UpdatePrice)
	r.PATCH("/update-price/:cafe_id", cafeCtrl.UpdatePrice)

	// DELETE
	reportClosed := r.Group("/report-closed")
	reportClosed.Use(middlewares.DeletionAuditMiddleware())
	{
		reportClosed.GET("/:cafe_id", cafeCtrl.ReportClosed)
		reportClosed.DELETE("/:cafe_id", cafeCtrl.ReportClosed)
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.RespondErrorBody(c, http.StatusMethodNotAllowed, "Method not allowed", "The method is not allowed for the requested URL.")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondNotFound(c, http.StatusNotFound, "The requested URL was not found on the server.")
	})

	return r
}
