package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return ctx, w
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrDataNotFound, 404},
		{domain.ErrForbidden, 403},
		{domain.ErrEmptyCart, 400},
		{domain.ErrInvalidSignature, 400},
		{domain.ErrUnknownProvider, 404},
		{domain.ErrInvalidTransition, 409},
		{domain.ErrNotAwaitingVerification, 409},
		{domain.ErrAlreadyProcessed, 409},
		{domain.ErrInsufficientStock, 409},
		{assert.AnError, 500},
	}

	h := NewHandler(zap.NewNop())
	for _, tc := range tests {
		ctx, w := testContext(t, "GET", "/", "")
		h.handleError(ctx, tc.err)
		assert.Equal(t, tc.wantCode, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestPagination(t *testing.T) {
	ctx, _ := testContext(t, "GET", "/orders?page=3&limit=25", "")
	page, limit, err := pagination(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	ctx, _ = testContext(t, "GET", "/orders", "")
	page, limit, err = pagination(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	for _, target := range []string{"/orders?page=0", "/orders?limit=-1", "/orders?page=x"} {
		ctx, _ = testContext(t, "GET", target, "")
		_, _, err = pagination(ctx)
		assert.ErrorIs(t, err, domain.ErrBadRequest, target)
	}
}

func TestQueryParams(t *testing.T) {
	ctx, _ := testContext(t, "GET", "/return?vnp_TxnRef=ORD1&vnp_Amount=50000000&vnp_ResponseCode=00", "")

	params := queryParams(ctx)
	assert.Equal(t, "ORD1", params["vnp_TxnRef"])
	assert.Equal(t, "50000000", params["vnp_Amount"])
	assert.Equal(t, "00", params["vnp_ResponseCode"])
}

func TestJSONParams(t *testing.T) {
	// numeric fields must keep their wire form: 500000 not 500000.000000
	body := `{"orderId":"ORD1","amount":500000,"resultCode":0,"extraData":null,"message":"Success"}`
	ctx, _ := testContext(t, "POST", "/ipn", body)

	params, err := jsonParams(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD1", params["orderId"])
	assert.Equal(t, "500000", params["amount"])
	assert.Equal(t, "0", params["resultCode"])
	assert.Equal(t, "", params["extraData"])
	assert.Equal(t, "Success", params["message"])
}

func TestJSONParams_MalformedBody(t *testing.T) {
	ctx, _ := testContext(t, "POST", "/ipn", "{not json")
	_, err := jsonParams(ctx)
	assert.Error(t, err)
}
