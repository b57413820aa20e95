// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing,
// ownership checks) from the domain logic. It acts as an Infrastructure
// service injected into the Application layer via small interfaces
// ([auth.TokenProvider], [middleware.TokenVerifier]).
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the shortest HMAC key accepted at construction.
const minSecretLength = 32

// Token verification failures. Callers match them with [errors.Is].
var (
	// ErrMalformedToken means the string is not a structurally valid JWT.
	ErrMalformedToken = errors.New("sec: malformed token")

	// ErrExpiredToken means the signature is valid but the token is past its expiry.
	ErrExpiredToken = errors.New("sec: token expired")

	// ErrInvalidToken covers bad signatures, unexpected algorithms, wrong
	// issuers and any other claim that fails validation.
	ErrInvalidToken = errors.New("sec: invalid token")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the account ID, email, and role directly inside the JWT, the
// access guard can reconstruct the caller's identity WITHOUT querying the
// database on every request.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID int64    `json:"id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"roles"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// It holds the signing secret for the lifetime of the process. The secret is
// never exposed, logged, or serialized.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService.
//
// # Parameters
//   - secret: HMAC signing key, at least 32 bytes.
//   - issuer: Value written to and required in the 'iss' claim.
//   - timeToLive: Lifetime of every issued token.
func NewTokenService(secret []byte, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes", minSecretLength)
	}

	if timeToLive == 0 {
		return nil, errors.New("sec: token time-to-live must be non-zero")
	}

	// Copy so later mutation of the caller's slice cannot change the key.
	key := make([]byte, len(secret))
	copy(key, secret)

	return &TokenService{
		secret:     key,
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// GenerateAccessToken creates a new signed JWT access token for an account.
func (service *TokenService) GenerateAccessToken(userID int64, email string, role UserRole) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, algorithm, issuer, and expiry of a JWT
// string before returning its claims.
//
// The returned error wraps exactly one of [ErrMalformedToken],
// [ErrExpiredToken], or [ErrInvalidToken].
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return claims, nil
}
