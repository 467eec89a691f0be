package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/drodriguezm/pizzeria-api/docs" // Import generated docs
	"github.com/drodriguezm/pizzeria-api/internal/config"
	"github.com/drodriguezm/pizzeria-api/internal/controllers"
	"github.com/drodriguezm/pizzeria-api/internal/database"
	"github.com/drodriguezm/pizzeria-api/internal/middleware"
	"github.com/drodriguezm/pizzeria-api/internal/models"
	"github.com/drodriguezm/pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	orderService    services.OrderService
	orderController controllers.OrderController
	configuration   *config.Config
)

// @title Pizzeria Order API
// @version 1.0
// @description REST backend for the pizzeria ordering workflow
// @host localhost:5000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	orderService = services.NewOrderService(db)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and returns a gorm.DB instance
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema: order headers and their pizza lines
	err = db.AutoMigrate(&models.Order{}, &models.PizzaLine{})
	checkPanicErr(err)

	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// CORS must run before any route handler
	router.Use(middleware.CORS(configuration.CORSOrigin))
	router.Use(middleware.RequestID())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
// Paths keep the Spanish names the existing frontend calls
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Connectivity probe
	router.GET("/test", orderController.Ping)

	// Order routes
	router.GET("/pedidos", orderController.GetAllOrders)
	router.POST("/pedidos", orderController.CreateOrder)
	router.GET("/pedidos/:nombre_completo", orderController.GetOrdersByCustomer)

	// Pizza line routes
	router.GET("/pizzas/:pedido_id", orderController.GetPizzasByOrderID)
	router.POST("/agregar_pizza/:pedido_id", orderController.AddPizza)
	router.DELETE("/eliminar_pizza/:pedido_id/:pizza_id", orderController.DeletePizza)

	// Aggregation routes
	router.GET("/ventas/:fecha", orderController.SalesByDate)
	router.GET("/calcular_total/:nombre_completo", orderController.CustomerTotal)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The original service answers unknown routes with an HTML page and a 400
	router.NoRoute(notFoundHandler)
}

// notFoundHandler answers any unmatched route
func notFoundHandler(c *gin.Context) {
	c.Data(http.StatusBadRequest, "text/html; charset=utf-8",
		[]byte("<h1>La página que estas buscando no existe</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-api",
	})
}
