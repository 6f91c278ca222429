package api

import (
	"net/http" // HTTP status codes

	_ "soulid/docs"               // Generated OpenAPI document
	"soulid/internal/events"      // Token events
	"soulid/internal/middleware"  // Custom middleware
	"soulid/internal/sandbox"     // Flat-file sandbox store
	"soulid/internal/storage"     // Image uploads
	"soulid/internal/suggestions" // Opportunity catalog

	"github.com/gin-gonic/gin"                 // Gin web framework
	"github.com/redis/go-redis/v9"             // Redis client
	"github.com/rs/cors"                       // CORS handling
	swaggerFiles "github.com/swaggo/files"     // Swagger UI assets
	ginSwagger "github.com/swaggo/gin-swagger" // Swagger UI handler
	"gorm.io/gorm"                             // GORM ORM library
)

// Deps are the collaborators the HTTP handlers need. Redis may be nil.
type Deps struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Uploader      storage.Uploader
	UploadDir     string // Served under /uploads when set
	Publisher     events.Publisher
	Sandbox       *sandbox.Store
	Catalog       *suggestions.Catalog
	JWTSecret     string
	PublicBaseURL string
}

// NewRouter registers every route on a fresh gin engine
func NewRouter(d Deps) *gin.Engine {
	if d.Publisher == nil {
		d.Publisher = events.NoopPublisher{}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Known paths answer other methods with 405 instead of 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler)) // Swagger UI
	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir) // Locally stored profile images
	}

	apiGroup := r.Group("/api")
	apiGroup.POST("/create-profile", CreateProfileHandler(d.DB, d.Uploader))               // Profile registration
	apiGroup.GET("/get-profile", GetProfileHandler(d.DB, d.Redis))                         // Profile retrieval
	apiGroup.POST("/mint-token", MintTokenHandler(d.DB, d.Redis, d.Publisher))             // Token minting
	apiGroup.GET("/verify-token", VerifyTokenHandler(d.DB, d.Redis))                       // Public verification
	apiGroup.GET("/verify-token/qr", VerifyTokenQRHandler(d.DB, d.Redis, d.PublicBaseURL)) // Verification QR code
	apiGroup.POST("/ai-suggestions", SuggestionsHandler(d.Catalog))                        // Static suggestions
	apiGroup.POST("/login", LoginHandler(d.DB, d.JWTSecret))                               // Session login

	// Session routes (protected by JWT)
	sessionGroup := apiGroup.Group("/session")
	sessionGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret))
	sessionGroup.GET("", SessionHandler(d.DB))

	// Sandbox routes never touch the relational store
	sandboxGroup := apiGroup.Group("/sandbox")
	sandboxGroup.POST("/mint-sbt", SandboxMintHandler(d.Sandbox))
	sandboxGroup.POST("/profiles", CreateSandboxProfileHandler(d.Sandbox))
	sandboxGroup.GET("/profiles/:id", GetSandboxProfileHandler(d.Sandbox))
	sandboxGroup.GET("/tokens", ListSandboxTokensHandler(d.Sandbox))

	return r
}

// WithCORS wraps h with a CORS policy for the given origins. "*" allows any origin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}
	if allowAll {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowCredentials = true
	}
	return cors.New(opts).Handler(h)
}
