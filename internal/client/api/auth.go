package api

import (
	"context"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/dto/responses"
)

func (c *Client) SignUp(ctx context.Context, request *requests.SignUp) (*models.User, error) {
	user := new(models.User)
	err := c.do(ctx, constvars.MethodPost, "/auth/signup", request, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	login := new(responses.Login)
	err := c.do(ctx, constvars.MethodPost, "/auth/login", request, login)
	if err != nil {
		return nil, err
	}
	return login, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, constvars.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	user := new(models.User)
	err := c.do(ctx, constvars.MethodGet, "/auth/me", nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
