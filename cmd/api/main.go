package main

import (
	"os"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/database"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/logger"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/middleware"
	routes "github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/server"
	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del actualizador de cotización
var rateUpdater *services.RateUpdater

func main() {
	log := logger.New()

	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Warnf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length", "Content-Disposition"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Iniciar el servicio de cotización de referencia (cada 5 minutos)
	rateUpdater = services.NewRateUpdater(5 * time.Minute)
	rateUpdater.Start()
	defer rateUpdater.Stop()

	// Hacer disponible el actualizador para los handlers
	middleware.SetRateUpdater(rateUpdater)

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
