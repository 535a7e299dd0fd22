package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/response"
	"github.com/presbyterian-ypg/ypg-api/internal/pkg/jwthelper"
)

// ContextKeySupervisorID is where VerifyJWT stores the authenticated
// supervisor's ID for downstream handlers.
const ContextKeySupervisorID = "supervisor_id"

var errMissingBearerToken = errors.New("missing or malformed bearer token")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearerToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		// A stolen token replayed from a different client is rejected.
		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))

			return
		}

		ctx.Set(ContextKeySupervisorID, claims.UserID)
		ctx.Next()
	}
}

// RequireJSON guards against stray content types on mutating endpoints.
func RequireJSON() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if ctx.Request.ContentLength > 0 && !strings.HasPrefix(ctx.ContentType(), "application/json") {
				response.RenderErr(ctx, response.ErrBadRequest(errors.New("content type must be application/json")))

				return
			}
		}

		ctx.Next()
	}
}
