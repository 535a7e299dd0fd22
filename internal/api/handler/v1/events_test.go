package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type stubContentService struct {
	ContentService

	event    domain.Event
	eventErr error
}

func (s *stubContentService) GetEvent(context.Context, uint) (domain.Event, error) {
	return s.event, s.eventErr
}

func newEventRouter(stub *stubContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewContentHandler(stub)

	router := gin.New()
	router.GET("/events/:eventID", handler.HandleGetEvent)

	return router
}

func TestHandleGetEvent(t *testing.T) {
	t.Run("returns the event", func(t *testing.T) {
		router := newEventRouter(&stubContentService{
			event: domain.Event{ID: 7, Title: "Easter Convention"},
		})

		req := httptest.NewRequest(http.MethodGet, "/events/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, uint(7), body.ID)
		assert.Equal(t, "Easter Convention", body.Title)
	})

	t.Run("missing event is a 404", func(t *testing.T) {
		router := newEventRouter(&stubContentService{eventErr: service.ErrContentNotFound})

		req := httptest.NewRequest(http.MethodGet, "/events/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric ID is a 400", func(t *testing.T) {
		router := newEventRouter(&stubContentService{})

		req := httptest.NewRequest(http.MethodGet, "/events/easter", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
