package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type Manager struct {
	secret []byte
	issuer string
}

// Claims carry the identity context issued by the membership platform:
// the acting user, their member, and the two flags the authorization
// rules depend on.
type Claims struct {
	UserID        int64 `json:"user_id"`
	MemberID      int64 `json:"member_id"`
	Administrator bool  `json:"administrator"`
	SelfManaged   bool  `json:"self_managed"`
	jwtlib.RegisteredClaims
}

func NewManager(secret, issuer string) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer}
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwtlib.ErrTokenInvalidClaims
}

// Generate is used by tests and tooling; production tokens come from the
// membership platform with the same shape.
func (m *Manager) Generate(c Claims, ttl time.Duration) (string, error) {
	c.RegisteredClaims = jwtlib.RegisteredClaims{
		Issuer:    m.issuer,
		IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}
