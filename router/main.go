package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/config"
	"github.com/techspire-labs/academy-api/database"
	"github.com/techspire-labs/academy-api/handlers"
	auth_handlers "github.com/techspire-labs/academy-api/handlers/auth"
	contact_handlers "github.com/techspire-labs/academy-api/handlers/contact"
	course_handlers "github.com/techspire-labs/academy-api/handlers/course"
	project_handlers "github.com/techspire-labs/academy-api/handlers/project"
	registration_handlers "github.com/techspire-labs/academy-api/handlers/registration"
	"github.com/techspire-labs/academy-api/services"
	"github.com/techspire-labs/academy-api/utils"
	"github.com/techspire-labs/academy-api/utils/auth"
	"github.com/techspire-labs/academy-api/utils/cache"
	"github.com/techspire-labs/academy-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load environment:", err)
	}

	// Get JWT secret from environment
	jwtSecret := getEnv.JWT_SECRET
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "techspire-academy-api"
	}

	// Initialize JWT manager with config
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour, // Access token expires in 24 hours
		Issuer: jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize Spaces client for admin image uploads (nil disables uploads)
	spacesClient, err := services.NewSpacesClientFromEnv(getEnv)
	if err != nil {
		log.Printf("Warning: Failed to initialize Spaces client: %v. Image uploads will be disabled.", err)
		spacesClient = nil
	}

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	projectHandler := project_handlers.NewProjectHandler(db, spacesClient)
	courseHandler := course_handlers.NewCourseHandler(db)
	contactHandler := contact_handlers.NewContactHandler(db)
	registrationHandler := registration_handlers.NewRegistrationHandler(db)

	// Apply security middleware. ALLOWED_ORIGINS wins; otherwise fall back to
	// the two configured frontend URLs, then to localhost dev ports.
	allowedOrigins := getEnv.ALLOWED_ORIGINS
	if allowedOrigins == "" && getEnv.FRONTEND_URL != "" {
		allowedOrigins = getEnv.FRONTEND_URL
		if getEnv.ADMIN_FRONTEND_URL != "" {
			allowedOrigins += "," + getEnv.ADMIN_FRONTEND_URL
		}
	}
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173,http://localhost:5174"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API group
	api := app.Group("/api")

	// Auth routes (public), login protected against brute force when Redis is up
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Projects routes
	projects := api.Group("/projects")
	projects.Get("/", projectHandler.ListProjects)                                                // Public: list projects (repair pass applies)
	projects.Get("/:id", projectHandler.GetProject)                                               // Public: get by slug or native key
	projects.Post("/", authMiddleware.RequireAdmin(), projectHandler.CreateProject)               // Admin only
	projects.Put("/:id", authMiddleware.RequireAdmin(), projectHandler.UpdateProject)             // Admin only
	projects.Delete("/:id", authMiddleware.RequireAdmin(), projectHandler.DeleteProject)          // Admin only
	projects.Post("/:id/image", authMiddleware.RequireAdmin(), projectHandler.UploadProjectImage) // Admin only

	// Courses routes. Mutations require admin auth like every other resource.
	courses := api.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)                                       // Public
	courses.Get("/:id", courseHandler.GetCourse)                                      // Public
	courses.Post("/", authMiddleware.RequireAdmin(), courseHandler.CreateCourse)      // Admin only
	courses.Put("/:id", authMiddleware.RequireAdmin(), courseHandler.UpdateCourse)    // Admin only
	courses.Delete("/:id", authMiddleware.RequireAdmin(), courseHandler.DeleteCourse) // Admin only

	// Contact routes. Creating a message is public, everything else is admin.
	contact := api.Group("/contact")
	contact.Post("/", contactHandler.CreateContact)
	contact.Get("/", authMiddleware.RequireAdmin(), contactHandler.ListContacts)
	contact.Patch("/:id", authMiddleware.RequireAdmin(), contactHandler.UpdateContactStatus)
	contact.Delete("/:id", authMiddleware.RequireAdmin(), contactHandler.DeleteContact)

	// Registration routes
	api.Post("/register", registrationHandler.CreateRegistration)
	api.Get("/register", authMiddleware.RequireAdmin(), registrationHandler.ListRegistrations)
}
