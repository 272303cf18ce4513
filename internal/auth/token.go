package auth

import (
	"strconv"
	"time"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenProvider issues and verifies the bearer tokens used by the auth
// middleware. Tokens are HS256 JWTs carrying the user id as subject; they are
// self-contained, so verification never touches the database.
type TokenProvider interface {
	Issue(userID uint) (string, error)
	Verify(token string) (uint, error)
}

type jwtProviderImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*jwtProviderImpl)

// WithClock overrides the time source, for deterministic expiry tests.
func WithClock(now func() time.Time) Option {
	return func(p *jwtProviderImpl) {
		p.now = now
	}
}

func NewJWTProvider(cfg config.JWT, opts ...Option) TokenProvider {
	p := &jwtProviderImpl{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *jwtProviderImpl) Issue(userID uint) (string, error) {
	issuedAt := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(p.ttl)),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *jwtProviderImpl) Verify(token string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return p.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, apperr.ErrInvalidToken.Wrap(err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, apperr.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperr.ErrInvalidToken.Wrap(err)
	}

	return uint(userID), nil
}
