package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"frontdesk/controllers"
	_ "frontdesk/docs"
	middlewares "frontdesk/middleware"
)

// Operator roles
const (
	RoleReceptionist = 3
	RoleManager      = 2
	RoleAdmin        = 1
)

type Controllers struct {
	Availability *controllers.AvailabilityController
	Category     *controllers.CategoryController
	Billing      *controllers.BillingController
	Mutation     *controllers.MutationController
	Notification *controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtSecret string) {
	router.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ws", ctrl.Notification.Connect)

	staff := middlewares.AuthMiddleware(jwtSecret, RoleAdmin, RoleManager, RoleReceptionist)

	v1 := router.Group("/api/v1")
	v1.GET("/availability", staff, ctrl.Availability.GetMonthlyAvailability)
	v1.GET("/availability/date", staff, ctrl.Availability.GetDateOccupancy)
	v1.GET("/conflicts", staff, ctrl.Availability.GetConflicts)

	v1.GET("/categories", staff, ctrl.Category.GetCategories)
	v1.GET("/categories/resolve", staff, ctrl.Category.ResolveCategory)

	v1.POST("/billing/quote", staff, ctrl.Billing.Quote)
	v1.POST("/billing/settle", staff, ctrl.Billing.Settle)

	v1.PUT("/roomStatus", staff, ctrl.Mutation.UpdateRoomStatus)
	v1.POST("/checkin", staff, ctrl.Mutation.CheckIn)
	v1.POST("/checkout", staff, ctrl.Mutation.CheckOut)
	v1.GET("/mutations/pending", staff, ctrl.Mutation.GetPending)

	v1.POST("/notifyAll", middlewares.AuthMiddleware(jwtSecret, RoleAdmin, RoleManager), ctrl.Notification.NotifyAll)
}
