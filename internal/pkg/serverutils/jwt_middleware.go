package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionChecker reports whether a login session is still registered.
// Logging out deletes the session, which invalidates the token immediately
// even though the JWT itself has not expired.
type SessionChecker interface {
	Exists(sessionID string) bool
}

func JwtMiddleware(secret string, sessions SessionChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		sessionID, _ := claims["jti"].(string)
		username, _ := claims["username"].(string)
		if sessionID == "" || username == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		if sessions != nil && !sessions.Exists(sessionID) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session expired"})
		}

		ctx.Locals("session_id", sessionID)
		ctx.Locals("username", username)
		return ctx.Next()
	}
}
