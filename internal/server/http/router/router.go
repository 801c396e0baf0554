package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/server/http/handlers"
	"github.com/polkiloo/foodfront/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	accountHandler := handlers.NewAccountHandler(facade)

	api := engine.Group("/api")

	public := api.Group("")
	public.Use(middleware.SessionOptional(facade))
	public.POST("/session/login", sessionHandler.Login)
	public.POST("/session/register", sessionHandler.Register)
	public.GET("/restaurants", catalogHandler.Restaurants)
	public.GET("/restaurants/:id", catalogHandler.Restaurant)

	authed := api.Group("")
	authed.Use(middleware.SessionRequired(facade))
	authed.GET("/session", sessionHandler.Current)
	authed.POST("/session/logout", sessionHandler.Logout)
	authed.GET("/notifications", sessionHandler.Notifications)

	authed.GET("/cart", cartHandler.Get)
	authed.GET("/cart/count", cartHandler.Count)
	authed.POST("/cart/items", cartHandler.Add)
	authed.PUT("/cart/items/:id", cartHandler.Update)
	authed.DELETE("/cart/items/:id", cartHandler.Remove)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/checkout", cartHandler.Checkout)

	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders/refresh", orderHandler.Refresh)
	authed.POST("/orders/:id/advance", orderHandler.Advance)
	authed.POST("/orders/:id/cancel", orderHandler.Cancel)

	authed.GET("/profile", accountHandler.Profile)
	authed.PUT("/profile", accountHandler.UpdateProfile)
	authed.PUT("/profile/password", accountHandler.ChangePassword)
	authed.GET("/addresses", accountHandler.Addresses)
	authed.POST("/addresses", accountHandler.AddAddress)
	authed.PUT("/addresses/:id", accountHandler.UpdateAddress)
	authed.DELETE("/addresses/:id", accountHandler.DeleteAddress)

	owner := authed.Group("/owner")
	owner.Use(middleware.RoleRequired(model.RoleRestaurantOwner, model.RoleAdmin))
	owner.GET("/dashboard", catalogHandler.Dashboard)
	owner.POST("/restaurants", catalogHandler.CreateRestaurant)
	owner.POST("/restaurants/:id/menu", catalogHandler.AddMenuItem)
	owner.PUT("/menu-items/:id", catalogHandler.UpdateMenuItem)
	owner.DELETE("/menu-items/:id", catalogHandler.DeleteMenuItem)

	admin := authed.Group("/admin")
	admin.Use(middleware.RoleRequired(model.RoleAdmin))
	admin.GET("/stats", catalogHandler.AdminStats)

	return engine
}
