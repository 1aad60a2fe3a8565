package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wellness-assistant/internal/middleware"
	"wellness-assistant/internal/model"
	wellnessHTTP "wellness-assistant/internal/wellness/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, srv.allowedOrigins)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.allowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the assistant routes at the root, where legacy clients expect them.
func (srv HTTPServer) registerDomainRoutes() {
	wellnessHTTP.RegisterRoutes(srv.gin.Group(""), srv.wellnessHandler)
	srv.l.Infof(context.Background(), "Wellness routes registered")
}
