package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodDelete, target, nil)

	return ctx
}

func TestParseDeleteScope(t *testing.T) {
	t.Run("dashboard", func(t *testing.T) {
		scope, respErr := parseDeleteScope(testContext(t, "/events/1?type=dashboard"))

		require.Nil(t, respErr)
		assert.Equal(t, domain.DeleteDashboardOnly, scope)
	})

	t.Run("both", func(t *testing.T) {
		scope, respErr := parseDeleteScope(testContext(t, "/events/1?type=both"))

		require.Nil(t, respErr)
		assert.Equal(t, domain.DeleteBoth, scope)
	})

	t.Run("omitting the type is an error, not a default", func(t *testing.T) {
		_, respErr := parseDeleteScope(testContext(t, "/events/1"))

		require.NotNil(t, respErr)
		assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, respErr := parseDeleteScope(testContext(t, "/events/1?type=everywhere"))

		require.NotNil(t, respErr)
		assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	})
}

func TestParseIDParam(t *testing.T) {
	ctx := testContext(t, "/events/abc")
	ctx.Params = gin.Params{{Key: "eventID", Value: "abc"}}

	_, respErr := parseIDParam(ctx, "eventID")
	require.NotNil(t, respErr)
	assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)

	ctx.Params = gin.Params{{Key: "eventID", Value: "42"}}
	id, respErr := parseIDParam(ctx, "eventID")
	require.Nil(t, respErr)
	assert.Equal(t, uint(42), id)
}
