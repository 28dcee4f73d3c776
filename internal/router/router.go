package router

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/backendservices/python-api/docs"
	"github.com/backendservices/python-api/internal/config"
	"github.com/backendservices/python-api/internal/handlers"
	"github.com/backendservices/python-api/internal/middleware"
	"github.com/backendservices/python-api/internal/services"
)

// APIBasePath prefixes every informational route
const APIBasePath = "/api"

// Deps holds everything the router needs to bind its handlers
type Deps struct {
	Config      *config.Config
	InfoService *services.InfoService
	// Logger receives request logs; nil means log.Default()
	Logger *log.Logger
}

// New builds the gin engine. It is constructed once at startup and is
// read-only afterwards.
func New(deps Deps) (*gin.Engine, error) {
	r := gin.New()

	// Known paths answer 405 for other methods instead of 404
	r.HandleMethodNotAllowed = true

	// Only listed proxies may set the client IP through X-Forwarded-For
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Order matters: the logger must see the request ID and the status
	// written by Recovery.
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		gin.Recovery(),
		deps.Config.CORS(),
	)

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	infoHandler := handlers.NewInfoHandler(deps.InfoService)

	api := r.Group(APIBasePath)
	{
		routes := map[string]gin.HandlerFunc{
			"/health": infoHandler.Health,
			"/data":   infoHandler.Data,
			"/info":   infoHandler.Info,
		}
		for path, handler := range routes {
			// net/http drops the body of HEAD responses
			api.Match([]string{http.MethodGet, http.MethodHead}, path, handler)
			api.OPTIONS(path, handlers.Options)
		}
	}

	if deps.Config.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
