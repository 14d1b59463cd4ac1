package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the middleware chain and all routes.
// A nil limiter disables rate limiting.
func SetupRouter(handler *Handler, zapLogger *zap.Logger, limiter *ClientRateLimiter, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.Middleware())
	}
	{
		v1.GET("/balances", handler.GetBalances)
		v1.GET("/prices", handler.GetPrices)
		v1.POST("/swap/quote", handler.PostSwapQuote)
	}

	return router
}
