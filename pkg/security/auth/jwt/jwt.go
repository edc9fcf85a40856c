// Package jwt provides JWT-based authentication for doc-center.
//
// It supports the HMAC family of signing algorithms and provides token
// generation and verification.
//
// Usage:
//
//	authn, err := jwt.New(jwtopts.NewOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Sign a token
//	token, err := authn.Sign(ctx, "user-123")
//
//	// Verify a token
//	claims, err := authn.Verify(ctx, tokenString)
package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/kart-io/doc-center/pkg/errors"
	jwtopts "github.com/kart-io/doc-center/pkg/options/jwt"
)

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   int64
	ExpiresIn   int64
}

// Claims are the verified token claims.
type Claims struct {
	Subject   string
	Issuer    string
	ExpiresAt int64
	IssuedAt  int64
	ID        string
}

// JWT signs and verifies tokens with an HMAC key.
type JWT struct {
	opts   *jwtopts.Options
	method jwt.SigningMethod
}

// New creates a new JWT authenticator from the given options.
func New(opts *jwtopts.Options) (*JWT, error) {
	if opts == nil {
		opts = jwtopts.NewOptions()
	}
	if err := opts.Complete(); err != nil {
		return nil, fmt.Errorf("complete options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}

	method := jwt.GetSigningMethod(opts.SigningMethod)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing method: %s", opts.SigningMethod)
	}

	return &JWT{opts: opts, method: method}, nil
}

// Sign creates a new token for the given subject.
func (j *JWT) Sign(_ context.Context, subject string) (*Token, error) {
	now := time.Now()
	expiresAt := now.Add(j.opts.Expired)

	tokenID, err := generateTokenID()
	if err != nil {
		return nil, err
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    j.opts.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(now),
		ID:        tokenID,
	}

	token := jwt.NewWithClaims(j.method, claims)
	tokenString, err := token.SignedString([]byte(j.opts.Key))
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to sign token")
	}

	return &Token{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// Verify validates the token and returns the claims.
func (j *JWT) Verify(_ context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.ErrInvalidToken.WithMessage("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.opts.Key), nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}
	if !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.ErrInvalidToken.WithMessage("invalid claims type")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.ErrInvalidToken.WithMessage("token has no expiry")
	}

	out := &Claims{
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		ExpiresAt: claims.ExpiresAt.Unix(),
		ID:        claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	return out, nil
}

// mapParseError maps jwt parse errors to doc-center errors.
func mapParseError(err error) *errors.Errno {
	switch {
	case strings.Contains(err.Error(), "token is expired"):
		return errors.ErrInvalidToken.WithMessage("token is expired")
	case strings.Contains(err.Error(), "signature is invalid"):
		return errors.ErrInvalidToken.WithMessage("invalid signature")
	case strings.Contains(err.Error(), "token is malformed"):
		return errors.ErrInvalidToken.WithMessage("malformed token")
	case strings.Contains(err.Error(), "token is not valid yet"):
		return errors.ErrInvalidToken.WithMessage("token not valid yet")
	default:
		return errors.ErrInvalidToken.WithCause(err)
	}
}

// generateTokenID generates a random token ID.
func generateTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", errors.ErrInternal.WithCause(err).WithMessage("failed to generate token ID")
	}
	return hex.EncodeToString(b), nil
}
