package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{errors.Wrap(models.BadParameterError, "bad status"), 400},
		{models.UnAuthorizedError, 401},
		{errors.Wrap(models.ErrOrderWrongOrg, "timeline"), 403},
		{models.ErrOrderNotFound, 404},
		{models.ConflictError, 409},
		{errors.New("pool exhausted"), 500},
	}

	for _, c := range cases {
		res := httptest.NewRecorder()
		ginCtx, _ := gin.CreateTestContext(res)

		handled := presentError(context.Background(), ginCtx, c.err)

		assert.True(t, handled)
		assert.Equal(t, c.status, res.Code, "status for %v", c.err)
	}

	t.Run("nil error is not handled", func(t *testing.T) {
		res := httptest.NewRecorder()
		ginCtx, _ := gin.CreateTestContext(res)
		assert.False(t, presentError(context.Background(), ginCtx, nil))
	})
}
