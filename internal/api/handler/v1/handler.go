package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/response"
	"github.com/presbyterian-ypg/ypg-api/internal/domain"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      plain
// @Success      200 {string} string "."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v %q", name, raw))
	}

	return uint(id), nil
}

// parseDeleteScope reads the mandatory ?type= query. Deleting without an
// explicit choice between "dashboard" and "both" is an error, never a
// default.
func parseDeleteScope(ctx *gin.Context) (domain.DeleteScope, *response.Err) {
	scope, err := domain.ParseDeleteScope(ctx.Query("type"))
	if err != nil {
		return "", response.ErrBadRequest(err)
	}

	return scope, nil
}

func parseListScope(ctx *gin.Context) (domain.ListScope, *response.Err) {
	scope, err := domain.ParseListScope(ctx.Query("scope"))
	if err != nil {
		return "", response.ErrBadRequest(err)
	}

	return scope, nil
}
