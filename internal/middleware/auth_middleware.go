package middleware

import (
	"fmt"
	"strings"

	"career-recommender/internal/usecase"
	"career-recommender/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const PrincipalKey = "principal"

// Auth parses the bearer token and stores the caller's identity in locals.
// The upstream issuer puts the user id in "sub" and an optional "role" claim.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid token claims",
			})
		}

		sub, _ := claims.GetSubject()
		if sub == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "token has no subject",
			})
		}

		role, _ := claims["role"].(string)
		c.Locals(PrincipalKey, usecase.Principal{UserID: sub, Role: role})
		return c.Next()
	}
}

// PrincipalFrom reads the authenticated principal stored by Auth.
func PrincipalFrom(c *fiber.Ctx) usecase.Principal {
	if p, ok := c.Locals(PrincipalKey).(usecase.Principal); ok {
		return p
	}
	return usecase.Principal{}
}
