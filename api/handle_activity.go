package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenciabaepi/AgilizaOS-sub004/dto"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

func handleOrderActivity(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		metricsUsecase := usecasesWithCreds(c, uc).NewActivityMetricsUsecase()
		metrics, err := metricsUsecase.OrderActivity(ctx, c.Param("order_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptActivityMetrics(metrics))
	}
}

func handleOrganizationActivity(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		metricsUsecase := usecasesWithCreds(c, uc).NewActivityMetricsUsecase()
		metrics, err := metricsUsecase.OrganizationActivity(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptActivityMetrics(metrics))
	}
}
