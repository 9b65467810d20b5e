package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenciabaepi/AgilizaOS-sub004/dto"
	"github.com/agenciabaepi/AgilizaOS-sub004/pure_utils"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

func handleOrderTimeline(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		timelineUsecase := usecasesWithCreds(c, uc).NewTimelineUsecase()
		events, err := timelineUsecase.Timeline(ctx, c.Param("order_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"timeline": pure_utils.Map(events, dto.AdaptTransitionEvent),
		})
	}
}
