package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recipeblog/internal/config"
	"recipeblog/internal/models"
	"recipeblog/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, string, error)
	OAuthLogin(ctx context.Context, idToken string) (*models.Session, string, error)
	ParseToken(tokenString string) (*models.Session, error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	userRepo   repository.UserRepository
	cfg        *config.Config
	httpClient *http.Client
}

func NewAuthService(adminRepo repository.AdminRepository, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login checks the admins table first, then users. Every failure collapses
// into ErrInvalidCredentials so the two identity spaces stay opaque.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, string, error) {
	admin, err := s.adminRepo.VerifyPassword(ctx, username, password)
	if err == nil {
		session := &models.Session{
			UserID:   admin.ID,
			Username: admin.Username,
			Role:     models.RoleAdmin,
		}
		return s.issueToken(session)
	}
	if !errors.Is(err, repository.ErrInvalidCredentials) {
		return nil, "", fmt.Errorf("failed to verify admin credentials: %w", err)
	}

	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return nil, "", repository.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to verify user credentials: %w", err)
	}

	session := &models.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     models.RoleUser,
	}
	return s.issueToken(session)
}

type googleTokenInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OAuthLogin verifies a Google id token against the tokeninfo endpoint and
// provisions a passwordless user record on first sign-in. OAuth accounts
// always carry the "user" role.
func (s *authService) OAuthLogin(ctx context.Context, idToken string) (*models.Session, string, error) {
	info, err := s.verifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, "", err
	}

	username := info.Email
	if username == "" {
		username = info.Name
	}
	if username == "" {
		return nil, "", repository.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindOrCreateOAuth(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to provision oauth user: %w", err)
	}

	session := &models.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     models.RoleUser,
	}
	return s.issueToken(session)
}

func (s *authService) verifyGoogleToken(ctx context.Context, idToken string) (*googleTokenInfo, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", s.cfg.GoogleTokenInfoURL, url.QueryEscape(idToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, repository.ErrInvalidCredentials
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	return &info, nil
}

func (s *authService) issueToken(session *models.Session) (*models.Session, string, error) {
	claims := jwt.MapClaims{
		"userId":   session.UserID,
		"username": session.Username,
		"role":     session.Role,
		"exp":      time.Now().Add(s.cfg.SessionDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return session, tokenString, nil
}

// ParseToken validates the signature and expiry and rebuilds the session.
func (s *authService) ParseToken(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok1 := claims["userId"].(float64)
	username, ok2 := claims["username"].(string)
	role, ok3 := claims["role"].(string)
	if !ok1 || !ok2 || !ok3 {
		return nil, errors.New("invalid token claims")
	}

	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	return &models.Session{
		UserID:   int64(userID),
		Username: username,
		Role:     role,
	}, nil
}
