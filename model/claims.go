package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
