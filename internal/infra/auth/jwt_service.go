package auth

import (
	"slices"
	"strings"
	"time"

	"todoapp/config"
	"todoapp/internal/domain/entity"
	"todoapp/internal/domain/service"
	"todoapp/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload: sub carries the account ID.
// exp has whole-second precision, so the exact expiry instant travels in exp_ns.
type Claims struct {
	Email         string `json:"email,omitempty"`
	ExpiresAtNano int64  `json:"exp_ns,omitempty"`
	jwt.RegisteredClaims
}

// expiry returns the instant the token stops being valid.
func (c *Claims) expiry() time.Time {
	if c.ExpiresAtNano != 0 {
		return time.Unix(0, c.ExpiresAtNano)
	}

	return c.ExpiresAt.Time
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := config.DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService([]byte(cfg.SecretKey.Access), ttl, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
		// Expiry is checked by Verify itself so that exp == now already counts as expired.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// GenerateToken issues a token valid for the configured TTL from now.
func (s *jwtService) GenerateToken(accountID uuid.UUID, email string) (*service.IssuedToken, error) {
	return s.Issue(accountID, email, s.now(), s.ttl)
}

// ValidateToken verifies a token at the current time.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Principal, error) {
	return s.Verify(tokenString, s.now())
}

// Issue signs {sub, email, iat, exp, exp_ns} with HS256. iat and exp have second precision.
func (s *jwtService) Issue(accountID uuid.UUID, email string, now time.Time, ttl time.Duration) (*service.IssuedToken, error) {
	expiresAt := now.Add(ttl)
	claims := Claims{
		Email:         email,
		ExpiresAtNano: expiresAt.UnixNano(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  accountID.String(),
			IssuedAt: jwt.NewNumericDate(now),
			// NumericDate truncates to seconds; round up so exp never precedes the real expiry.
			ExpiresAt: jwt.NewNumericDate(expiresAt.Add(time.Second - time.Nanosecond)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks shape, then signature, then payload, then expiry, in that order.
func (s *jwtService) Verify(tokenString string, now time.Time) (*entity.Principal, error) {
	segments := strings.Split(tokenString, ".")
	if len(segments) != 3 || slices.Contains(segments, "") {
		return nil, errors.WithStack(service.ErrTokenMalformed)
	}

	signature, err := s.parser.DecodeSegment(segments[2])
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenSignature, "signature segment is not base64url")
	}

	signingString := segments[0] + "." + segments[1]
	if err := jwt.SigningMethodHS256.Verify(signingString, signature, s.secret); err != nil {
		return nil, errors.Wrap(service.ErrTokenSignature, err.Error())
	}

	claims := &Claims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFunc); err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "missing sub or exp")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "sub is not an account id")
	}

	if !claims.expiry().After(now) {
		return nil, errors.WithStack(service.ErrTokenExpired)
	}

	return &entity.Principal{
		AccountID: accountID,
		Email:     claims.Email,
	}, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
