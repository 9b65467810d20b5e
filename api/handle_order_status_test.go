package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agenciabaepi/AgilizaOS-sub004/dto"
	"github.com/agenciabaepi/AgilizaOS-sub004/usecases"
)

func transitionRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/orders/order-1/status",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleUpdateOrderStatus_RequiresAtLeastOneDimension(t *testing.T) {
	gin.SetMode(gin.TestMode)

	res := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(res)
	ginCtx.Request = transitionRequest(`{"reason":"sem mudanca"}`)

	handleUpdateOrderStatus(usecases.Usecases{})(ginCtx)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "new_status or new_technical_status")
}

func TestRecordTransitionBody_TechnicalStatusOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	res := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(res)
	ginCtx.Request = transitionRequest(`{"new_technical_status":"BANCADA"}`)

	var body dto.RecordTransitionBody
	assert.NoError(t, ginCtx.ShouldBindJSON(&body))
	assert.Equal(t, "BANCADA", body.NewTechnicalStatus)
	assert.Empty(t, body.NewStatus)
}
