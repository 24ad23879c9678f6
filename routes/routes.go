package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/config"
	"github.com/ian-shakespeare/tapster/controllers"
	"github.com/ian-shakespeare/tapster/middlewares"
	"github.com/ian-shakespeare/tapster/services"
)

// SetupRouter wires services, controllers and routes. Everything below the
// auth group requires a valid bearer token.
func SetupRouter(cfg *config.Config, db *gorm.DB, objects services.ObjectStore) *gin.Engine {
	users := controllers.NewUserController(services.NewUserService(db, cfg.SigningKey))
	bars := controllers.NewBarController(services.NewBarService(db))
	ingredients := controllers.NewIngredientController(services.NewIngredientService(db))
	media := controllers.NewMediaController(services.NewMediaService(db, objects))
	units := controllers.NewUnitController(services.NewUnitService(db))

	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	r.Use(cors.Default())

	r.GET("/healthcheck", controllers.Healthcheck)
	r.GET("/units", units.List)
	r.POST("/register", users.Register)
	r.POST("/sign-in", users.SignIn)

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(cfg.SigningKey))
	{
		authed.POST("/bars", bars.Create)
		authed.GET("/bars", bars.List)
		authed.GET("/bars/:id", bars.Get)

		authed.POST("/ingredients", ingredients.Create)
		authed.GET("/ingredients", ingredients.List)
		authed.GET("/ingredients/:id", ingredients.Get)
		authed.GET("/ingredients/:id/ingredients", ingredients.ListSub)

		authed.POST("/media", media.Create)
		authed.GET("/media/:id", media.Get)
	}

	return r
}
