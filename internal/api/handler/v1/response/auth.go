package response

import "github.com/presbyterian-ypg/ypg-api/internal/domain"

type LoginResponse struct {
	Token      string            `json:"token"`
	Supervisor domain.Supervisor `json:"supervisor"`
}
