package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

type Configuration struct {
	Port               string
	CorsAllowLocalhost bool
}

func New(conf Configuration, uc usecases.Usecases, logger *slog.Logger) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	if conf.CorsAllowLocalhost {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "X-Org-Id", "X-User-Id", "X-User-Name", "X-User-Role", "X-User-Email"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/liveness", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := router.Group("/", credentialsMiddleware())
	{
		authed.POST("/orders", handleCreateOrder(uc))
		authed.POST("/orders/:order_id/status", handleUpdateOrderStatus(uc))
		authed.POST("/orders/:order_id/actions", handleRecordAction(uc))
		authed.GET("/orders/:order_id/timeline", handleOrderTimeline(uc))
		authed.GET("/orders/:order_id/activity", handleOrderActivity(uc))
		authed.GET("/activity", handleOrganizationActivity(uc))
		authed.GET("/audit/events", handleListActionEvents(uc))
	}

	return &http.Server{
		Addr:    ":" + conf.Port,
		Handler: router,
	}
}
