package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/market-system/internal/api/middleware"
	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

// AuthHandler issues and clears the session credential cookie.
type AuthHandler struct {
	tokens ports.TokenService
	// secure toggles production cookie attributes: Secure plus
	// SameSite=None for cross-site frontends. Development uses Strict.
	secure bool
}

func NewAuthHandler(tokens ports.TokenService, secure bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, secure: secure}
}

// Issue signs the submitted identity payload into a session credential and
// sets it as an HTTP-only cookie.
//
// @Summary      Issue a session credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Identity payload (at minimum an email claim)"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) Issue(c echo.Context) error {
	claims := domain.Claims{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(identitySchema{Email: claims.Email()}); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, 0))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Logout instructs the client to discard its credential by expiring the
// cookie. Nothing is invalidated server-side: an already-issued token
// remains verifiable until its expiry.
//
// @Summary      Clear the session credential
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	}
}
