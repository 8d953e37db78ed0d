package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"onboard-tools-backend/config"
)

func GetToken(name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  "manager",
		"role": "manager",
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

// GetManagerName returns the display name from the token, empty when absent.
func GetManagerName(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	name, _ := claims["name"].(string)
	return name
}
