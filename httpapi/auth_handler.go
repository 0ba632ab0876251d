package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "campus-chat/errors"
	"campus-chat/services"
)

type authAPI struct {
	service services.IAuthService
}

func registerAuthAPI(g *echo.Group, svc services.IAuthService) {
	api := authAPI{service: svc}

	ag := g.Group("/auth")
	ag.POST("/register", api.register)
	ag.POST("/login", api.login)
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

func (api *authAPI) register(c echo.Context) error {
	data := new(registerRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	session, err := api.service.Register(data.Email, data.Name, data.Password)
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, sessionResponse{UserID: session.UserID, Token: session.Token})
}

func (api *authAPI) login(c echo.Context) error {
	data := new(loginRequest)
	if err := c.Bind(data); err != nil {
		return err
	}

	session, err := api.service.Login(data.Email, data.Password)
	if err != nil {
		return apperrors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, sessionResponse{UserID: session.UserID, Token: session.Token})
}
