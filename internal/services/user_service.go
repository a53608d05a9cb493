package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/forestshield/forestshield-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, name, email, password, role string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser creates a new user, hashing their password before it is stored.
// An empty role defaults to "user"; an unknown role is rejected.
func (s *UserService) CreateUser(ctx context.Context, name, email, password, role string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	switch role {
	case "":
		role = models.RoleUser
	case models.RoleUser, models.RoleAdmin:
	default:
		return models.User{}, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	// The unique index on email backs this check; no other writer exists.
	if _, err := s.getUserByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, name, email, password_hash, role, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// ListUsers retrieves all users in insertion order, without password hashes.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email, role, created_at, updated_at FROM users ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// getUserByEmail retrieves a single user by email, including the password hash.
func (s *UserService) getUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// AuthenticateUser verifies a user's credentials.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}
