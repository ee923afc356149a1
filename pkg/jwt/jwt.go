// Package jwt emite y verifica los tokens de sesión de la API.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwt: secret vacío")
	ErrInvalidToken = errors.New("jwt: token inválido")
)

// Session es la identidad que viaja dentro del token: suficiente para que
// el middleware de autorización decida sin ir a la base de datos.
type Session struct {
	UserID    string
	CompanyID string
	Role      string
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"` // "admin" | "bodeguero" | "vendedor"
}

// Manager firma y verifica tokens HS256 con una configuración fija por proceso.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewManager(secret, issuer string, expMinutes int) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    time.Duration(expMinutes) * time.Minute,
	}, nil
}

// Sign emite un token firmado para la sesión dada.
func (m *Manager) Sign(s Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:    s.UserID,
		CompanyID: s.CompanyID,
		Role:      s.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify valida firma y expiración y devuelve la sesión embebida.
func (m *Manager) Verify(tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	return Session{UserID: claims.UserID, CompanyID: claims.CompanyID, Role: claims.Role}, nil
}
