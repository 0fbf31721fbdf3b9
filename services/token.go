package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/config"
	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates bearer tokens issued by the identity provider and
// yields the stable user identifier they carry. The cache is optional; a
// nil cache means every request verifies the signature.
type TokenVerifier struct {
	secret []byte
	issuer string
	cache  *TokenCache
}

func NewTokenVerifier(cfg config.JWTConfig, cache *TokenCache) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		cache:  cache,
	}
}

// Verify checks the token signature and claims and returns the user ID.
func (v *TokenVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	if v.cache != nil {
		if userID, ok := v.cache.Get(ctx, tokenString); ok {
			return userID, nil
		}
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil || claims["exp"] == nil {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	// Refresh tokens are not accepted as access credentials
	if tokenType, exists := claims["type"]; exists && tokenType == "refresh" {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	if iss, ok := claims["iss"].(string); ok && iss != v.issuer {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		utils.TrackAuthAttempt("failure")
		return "", ErrInvalidToken
	}

	if v.cache != nil {
		v.cache.Set(ctx, tokenString, userID, time.Unix(int64(exp), 0))
	}

	utils.TrackAuthAttempt("success")
	return userID, nil
}
