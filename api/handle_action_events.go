package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenciabaepi/AgilizaOS-sub004/dto"
	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/pure_utils"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

func handleListActionEvents(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters dto.ActionEventFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actionLogUsecase := usecasesWithCreds(c, uc).NewActionLogUsecase()
		events, err := actionLogUsecase.ListActionEvents(ctx,
			models.PaginationAndSorting{
				Limit:    filters.Limit,
				OffsetId: filters.After,
			},
			filters.ToModel(),
		)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"events": pure_utils.Map(events, dto.AdaptActionEvent),
		})
	}
}

func handleRecordAction(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body struct {
			ActionKind  string         `json:"action_kind" binding:"required"`
			Category    string         `json:"category"`
			Description string         `json:"description" binding:"required"`
			Detail      map[string]any `json:"detail"`
			Reason      *string        `json:"reason"`
			Notes       *string        `json:"notes"`
			Origin      string         `json:"origin"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		clientIp := c.ClientIP()
		userAgent := c.Request.UserAgent()

		input := usecases.RecordActionInput{
			OrderId:     c.Param("order_id"),
			ActionKind:  models.ActionKindFrom(body.ActionKind),
			Category:    models.ActionCategoryFrom(body.Category),
			Description: body.Description,
			Detail:      body.Detail,
			Reason:      body.Reason,
			Notes:       body.Notes,
			Origin:      models.EventOriginFrom(body.Origin),
		}
		if clientIp != "" {
			input.RequestIp = &clientIp
		}
		if userAgent != "" {
			input.ClientInfo = &userAgent
		}

		actionRecorder := usecasesWithCreds(c, uc).NewActionRecorder()
		eventId, err := actionRecorder.RecordAction(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": eventId})
	}
}
