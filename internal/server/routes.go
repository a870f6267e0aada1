package routes

import (
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/middleware"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar base de datos primero
	if err := database.InitDB(); err != nil {
		panic(err)
	}

	// Luego inicializar repositorios
	repository.InitRepositories(database.DB)
	middleware.InitAuth()
	middleware.InitClerk()

	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	// Webhook de Clerk para sincronizar usuarios
	router.POST("/webhooks/clerk", middleware.ClerkWebhookHandler)

	// Tablas de referencia para los formularios
	router.GET("/platforms", middleware.GetPlatforms)
	router.GET("/payment-methods", middleware.GetPaymentMethods)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.GET("/clients", middleware.GetClients)
		protected.POST("/clients", middleware.CreateClient)
		protected.PUT("/clients/:id", middleware.UpdateClient)
		protected.DELETE("/clients/:id", middleware.DeleteClient)

		protected.POST("/transactions", middleware.CreateTransaction)
		protected.GET("/transactions", middleware.GetUserTransactions)
		protected.GET("/transactions/export/excel", middleware.ExportTransactionsExcel)
		protected.GET("/transactions/export/pdf", middleware.ExportTransactionsPDF)

		protected.GET("/dashboard", middleware.GetDashboard)
		protected.GET("/reports", middleware.GetReport)
		protected.GET("/rate", middleware.GetRate)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
	}

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)
}
