package middleware

import (
	"strings"

	"adinas/internal/delivery/http/response"
	"adinas/internal/domain/entity"
	"adinas/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyActor is the echo.Context key under which the authenticated
// actor is stored.
const ContextKeyActor = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the resulting
// actor on the context. Refresh tokens are rejected here; they are only
// accepted by the dedicated refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok, err := m.actorFromHeader(c)
		if !ok {
			return err
		}

		c.Set(ContextKeyActor, actor)

		return next(c)
	}
}

// OptionalAuthenticate resolves the actor when a bearer token is present but
// lets anonymous requests through. Used on public endpoints whose visibility
// widens for authors and admins.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		actor, ok, err := m.actorFromHeader(c)
		if !ok {
			return err
		}

		c.Set(ContextKeyActor, actor)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			// Admins pass every role gate.
			if actor.IsAdmin() {
				return next(c)
			}

			for _, role := range roles {
				if actor.HasRole(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "Insufficient role for this operation")
		}
	}
}

// ActorFromContext retrieves the authenticated actor stored by Authenticate.
func ActorFromContext(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(ContextKeyActor).(entity.Actor)

	return actor, ok
}

// actorFromHeader resolves the bearer token into an actor. On failure the
// 401 response is already written and ok is false.
func (m *AuthMiddleware) actorFromHeader(c echo.Context) (entity.Actor, bool, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return entity.Actor{}, false, response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return entity.Actor{}, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return entity.Actor{}, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	if claims.Type != "access" {
		return entity.Actor{}, false, response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return entity.Actor{}, false, response.Unauthorized(c, "INVALID_TOKEN", "Unknown role in token")
	}

	return entity.Actor{ID: claims.UserID, Role: role}, true, nil
}
