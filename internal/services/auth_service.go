package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("user already exists")
	ErrBadToken   = errors.New("invalid or expired token")
)

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration
}

func NewAuthService(users *repos.UserRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Secret: []byte(secret), TTL: ttl}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Address  string
	Phone    string
}

func (s *AuthService) Register(in RegisterInput) (*domain.User, string, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		ID:      uuid.NewString(),
		Email:   in.Email,
		Name:    in.Name,
		Hash:    string(hash),
		Role:    domain.RoleClient, // registration never grants admin
		Avatar:  "https://ui-avatars.com/api/?background=d946ef&color=fff",
		Address: in.Address,
		Phone:   in.Phone,
		Active:  true,
	}
	u.EncodeInterests()
	if err := s.Users.Create(u); err != nil {
		// The ByEmail pre-check races with concurrent registrations; the
		// unique index on LOWER(email) is the backstop.
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	tok, err := s.MintToken(u.ID)
	return u, tok, err
}

func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	u.DecodeInterests()
	tok, err := s.MintToken(u.ID)
	return u, tok, err
}

// AdminLogin fails with the same error as a bad password so the endpoint
// cannot be used to probe which accounts are admins.
func (s *AuthService) AdminLogin(email, password string) (*domain.User, string, error) {
	u, tok, err := s.Login(email, password)
	if err != nil {
		return nil, "", err
	}
	if !u.IsAdmin() {
		return nil, "", ErrBadCreds
	}
	return u, tok, nil
}

func (s *AuthService) MintToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// UserFromToken verifies the JWT and resolves the subject against the user
// table, so deleted or deactivated accounts stop authenticating immediately.
func (s *AuthService) UserFromToken(token string) (*domain.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadToken
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrBadToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrBadToken
	}
	u, err := s.Users.ByID(claims.Subject)
	if err != nil || !u.Active {
		return nil, ErrBadToken
	}
	u.DecodeInterests()
	return u, nil
}

type ProfileInput struct {
	Name        string
	Avatar      string
	Address     string
	Country     string
	CountryCode string
	Phone       string
	Bio         string
	Interests   []string
}

func (s *AuthService) UpdateProfile(u *domain.User, in ProfileInput) (*domain.User, error) {
	u.Name = in.Name
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}
	u.Address = in.Address
	u.Country = in.Country
	u.CountryCode = in.CountryCode
	u.Phone = in.Phone
	u.Bio = in.Bio
	u.Interests = in.Interests
	u.EncodeInterests()
	if err := s.Users.UpdateProfile(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ChangePassword(u *domain.User, current, next string) error {
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(current)) != nil {
		return ErrBadCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), 10)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(u.ID, string(hash))
}

func (s *AuthService) DeleteAccount(u *domain.User) error {
	return s.Users.DeleteUserCascade(u.ID, u.Email)
}
