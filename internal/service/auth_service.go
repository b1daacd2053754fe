package service

import (
	"errors"

	"go-agritrace/internal/model"
	"go-agritrace/internal/session"
	"go-agritrace/pkg/jwt"
)

var (
	ErrMissingFields  = errors.New("please fill in all fields")
	ErrUnknownRole    = errors.New("unknown role")
	ErrSessionRevoked = errors.New("session expired (logged in elsewhere)")
)

type AuthService interface {
	Login(identity, secret, role string) (*LoginResponse, error)
	Logout()
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token    string     `json:"token"`
	Identity string     `json:"identity"`
	Role     model.Role `json:"role"`
}

type TokenValidationResponse struct {
	Identity string     `json:"identity"`
	Role     model.Role `json:"role"`
}

type authService struct {
	state *session.State
}

func NewAuthService(state *session.State) AuthService {
	return &authService{state: state}
}

// Login establishes the active session. The secret is required to be
// non-empty but is never verified against anything: this is role
// selection, not authentication, and stays that way on purpose.
func (s *authService) Login(identity, secret, role string) (*LoginResponse, error) {
	if identity == "" || secret == "" || role == "" {
		return nil, ErrMissingFields
	}

	parsed, ok := model.ParseRole(role)
	if !ok {
		return nil, ErrUnknownRole
	}

	sess := s.state.Begin(identity, parsed)

	token, err := jwt.GenerateToken(sess.Identity, string(sess.Role), sess.ID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		Identity: sess.Identity,
		Role:     sess.Role,
	}, nil
}

func (s *authService) Logout() {
	s.state.End()
}

// ValidateToken checks both the token signature and that it belongs to
// the currently active session. A token from a login that has since been
// replaced or ended validates cryptographically but is rejected here.
func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if !s.state.IsActive(claims.SessionID) {
		return nil, ErrSessionRevoked
	}

	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return nil, ErrUnknownRole
	}

	return &TokenValidationResponse{
		Identity: claims.Identity,
		Role:     role,
	}, nil
}
