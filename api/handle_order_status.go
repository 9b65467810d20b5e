package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/agenciabaepi/AgilizaOS-sub004/dto"
	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

func handleCreateOrder(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateServiceOrderBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderUsecase := usecasesWithCreds(c, uc).NewOrderStatusUsecase()
		order, err := orderUsecase.CreateOrder(ctx, models.CreateServiceOrderAttributes{
			CustomerName:  body.CustomerName,
			Equipment:     body.Equipment,
			ReportedIssue: body.ReportedIssue,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptServiceOrder(order))
	}
}

func handleUpdateOrderStatus(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RecordTransitionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.NewStatus == "" && body.NewTechnicalStatus == "" {
			presentError(ctx, c, errors.Wrap(models.BadParameterError,
				"at least one of new_status or new_technical_status is required"))
			return
		}

		attrs := models.UpdateOrderStatusAttributes{
			OrderId: c.Param("order_id"),
			Reason:  body.Reason,
			Notes:   body.Notes,
			Origin:  models.EventOriginFrom(body.Origin),
		}
		if body.NewStatus != "" {
			attrs.Status = models.OrderStatusFrom(body.NewStatus)
		}
		if body.NewTechnicalStatus != "" {
			attrs.TechnicalStatus = models.TechnicalStatusFrom(body.NewTechnicalStatus)
		}

		orderUsecase := usecasesWithCreds(c, uc).NewOrderStatusUsecase()
		order, err := orderUsecase.UpdateOrderStatus(ctx, attrs)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptServiceOrder(order))
	}
}
