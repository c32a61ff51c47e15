package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const authURI = "/v1/auth"

type Auth struct {
	c *apiclient.Client
}

// Login exchanges credentials for a token and the employee record.
func (a *Auth) Login(ctx context.Context, payload models.LoginPayload) (*models.LoginResponse, error) {
	return one[models.LoginResponse](ctx, a.c, http.MethodPost, authURI+"/login", nil, payload)
}
