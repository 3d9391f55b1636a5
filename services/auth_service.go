package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fercullen.events/configs/configslog"
	"fercullen.events/models"
	"fercullen.events/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "kullanıcı adı veya şifre hatalı"
	ErrInvalidAuthToken   AuthServiceError = "geçersiz veya süresi dolmuş oturum"
)

// TokenTTL oturum çerezinin geçerlilik süresi.
const TokenTTL = 24 * time.Hour

// AuthClaims oturum token'ının içeriği.
type AuthClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IAuthService admin kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*AuthClaims, error)
}

// AuthService IAuthService arayüzünü uygular (bcrypt + HS256 JWT).
type AuthService struct {
	repo   repositories.IUserRepository
	secret string
}

// NewAuthService JWT imzalama anahtarıyla oluşturulur.
func NewAuthService(secret string) IAuthService {
	return &AuthService{
		repo:   repositories.NewUserRepository(),
		secret: secret,
	}
}

// Authenticate kullanıcı adı/şifre doğrulaması yapar.
// Kullanıcının var olmaması ile şifrenin yanlış olması aynı hatayı
// döndürür; hangi kısmın hatalı olduğu dışarı sızdırılmaz.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.SLog.Warnf("Başarısız giriş denemesi: %s", username)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GenerateToken kullanıcı için HS256 imzalı oturum token'ı üretir.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		configslog.Log.Error("GenerateToken: token imzalanamadı", zap.Error(err))
		return "", fmt.Errorf("token imzalanamadı: %w", err)
	}
	return signed, nil
}

// ValidateToken oturum token'ını doğrular ve claim'leri döndürür.
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidAuthToken
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidAuthToken
	}
	return claims, nil
}

var _ IAuthService = (*AuthService)(nil)
