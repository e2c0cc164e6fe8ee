package jwt

import (
	"context"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

type Port interface {
	GenPair(ctx context.Context, uid uuid.UUID, role md.Role) (string, string, error)
	NewToken(ctx context.Context, uid uuid.UUID, role md.Role, typ TokenType) (string, error)
	ParseClaims(ctx context.Context, tokenStr string, typ TokenType) (Claims, error)
}

type Core struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Claims struct {
	UID  uuid.UUID `json:"uid"`
	Role md.Role   `json:"role"`
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

func (c Claims) Principal() md.Principal {
	return md.Principal{UserID: c.UID, Role: c.Role}
}

func New(conf config.JWTConfig) *Core {
	return &Core{
		secret:     []byte(conf.Secret),
		issuer:     conf.Issuer,
		accessTTL:  conf.AccessTTL,
		refreshTTL: conf.RefreshTTL,
	}
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID, role md.Role) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.NewToken(ctx, uid, role, TokenAccess)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	refresh, err := c.NewToken(ctx, uid, role, TokenRefresh)
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	return access, refresh, nil
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, role md.Role, typ TokenType) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ttl := c.accessTTL
	if typ == TokenRefresh {
		ttl = c.refreshTTL
	}

	now := time.Now()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID:  uid,
			Role: role,
			Type: typ,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

// ParseClaims validates tokenStr and requires it to be of type typ.
func (c *Core) ParseClaims(ctx context.Context, tokenStr string, typ TokenType) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
		jwt.WithIssuer(c.issuer),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		zap.L().Debug(
			"Token is invalid",
			zap.String("op", op),
		)

		return claims, ErrInvalidToken
	}

	if claims.Type != typ {
		return claims, ErrWrongTokenType
	}

	return claims, nil
}
