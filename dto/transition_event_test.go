package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/pure_utils"
)

func TestAdaptTransitionEvent(t *testing.T) {
	t.Run("first event has null previous statuses and no dwell", func(t *testing.T) {
		out := AdaptTransitionEvent(models.TransitionEvent{
			Id:                 "e-1",
			NewStatus:          models.OrderAberta,
			NewTechnicalStatus: models.TechNaoIniciada,
			ActorName:          models.SystemActorName,
			Origin:             models.OriginSystem,
		})

		assert.False(t, out.PreviousStatus.Valid)
		assert.False(t, out.PreviousTechnicalStatus.Valid)
		assert.False(t, out.DwellDuration.Valid)
		assert.False(t, out.DwellLabel.Valid)
		assert.Equal(t, "ABERTA", out.NewStatus)
		assert.Equal(t, "System", out.ActorName)
	})

	t.Run("dwell renders both machine and display forms", func(t *testing.T) {
		dwell := 51*time.Hour + 10*time.Minute
		out := AdaptTransitionEvent(models.TransitionEvent{
			Id:             "e-2",
			PreviousStatus: pure_utils.PtrTo(models.OrderAberta),
			NewStatus:      models.OrderEmAnalise,
			DwellDuration:  &dwell,
		})

		assert.Equal(t, "ABERTA", out.PreviousStatus.String)
		assert.Equal(t, "51h10m0s", out.DwellDuration.String)
		assert.Equal(t, "2d 3h 10m", out.DwellLabel.String)
	})
}
