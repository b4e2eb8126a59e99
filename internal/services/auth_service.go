package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"messenger-backend/config"
	"messenger-backend/internal/domain/user"
	"messenger-backend/internal/repository"
	messenger_errors "messenger-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	AdminID         int64
	Username        string
	Password        string
	IsFriendOfAdmin bool
}

type UpdateProfileInput struct {
	UserID      int64
	FirstName   string
	LastName    string
	DisplayName string
	AvatarURL   string
}

type LoginResult struct {
	User  user.User
	Token string
}

type AccessClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Login verifies credentials, touches last_seen, and issues an access
// token. Unknown usernames and bad passwords are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return LoginResult{}, messenger_errors.ErrInvalidInput
	}

	u, err := s.userRepo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, messenger_errors.ErrNotFound) {
			return LoginResult{}, messenger_errors.ErrUnauthorized
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return LoginResult{}, messenger_errors.ErrUnauthorized
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastSeen(ctx, u.ID, now); err != nil {
		return LoginResult{}, err
	}
	u.LastSeen = sql.NullTime{Time: now, Valid: true}

	token, err := s.newAccessToken(u.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Token: token}, nil
}

// Register creates a new user on behalf of an admin. Callers whose
// admin_id does not refer to an admin user are rejected.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if in.Username == "" || in.Password == "" {
		return user.User{}, messenger_errors.ErrInvalidInput
	}

	admin, err := s.userRepo.GetUserByID(ctx, in.AdminID)
	if err != nil {
		if errors.Is(err, messenger_errors.ErrNotFound) {
			return user.User{}, messenger_errors.ErrForbidden
		}
		return user.User{}, err
	}
	if !admin.IsAdmin {
		return user.User{}, messenger_errors.ErrForbidden
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return user.User{}, err
	}

	newUser := &user.User{
		Username:        in.Username,
		PasswordHash:    hash,
		IsFriendOfAdmin: in.IsFriendOfAdmin,
		CreatedAt:       time.Now(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return user.User{}, err
	}

	return *newUser, nil
}

// UpdateProfile overwrites the profile fields of the given user and
// returns the updated row.
func (s *AuthService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (user.User, error) {
	if in.UserID == 0 {
		return user.User{}, messenger_errors.ErrInvalidInput
	}

	err := s.userRepo.UpdateProfile(ctx, in.UserID,
		toNullString(in.FirstName),
		toNullString(in.LastName),
		toNullString(in.DisplayName),
		toNullString(in.AvatarURL))
	if err != nil {
		return user.User{}, err
	}

	return s.userRepo.GetUserByID(ctx, in.UserID)
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (user.User, error) {
	if userID == 0 {
		return user.User{}, messenger_errors.ErrInvalidInput
	}
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, messenger_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, messenger_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, messenger_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, messenger_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, messenger_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, messenger_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, messenger_errors.ErrForbidden):
		return 403
	case errors.Is(err, messenger_errors.ErrNotFound):
		return 404
	case errors.Is(err, messenger_errors.ErrAlreadyExists), errors.Is(err, messenger_errors.ErrConflict):
		return 409
	case errors.Is(err, messenger_errors.ErrRateLimited):
		return 429
	case errors.Is(err, messenger_errors.ErrServiceUnavailable):
		return 503
	default:
		return 500
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func toNullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
