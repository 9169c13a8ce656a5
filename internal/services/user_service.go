package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mouad22Hakimi/lost-and-found-platform/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, fullName, email, studentID, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, events EventServiceProvider) *UserService {
	return &UserService{db: db, events: events}
}

// Register creates a new account, hashing the password.
func (s *UserService) Register(ctx context.Context, fullName, email, studentID, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateRegistration(fullName, email, studentID, password); err != nil {
		return models.User{}, err
	}

	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email,
	).Scan(&exists)
	if err != nil {
		return models.User{}, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		StudentID:    studentID,
		PasswordHash: string(hashedPassword),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users(id, full_name, email, student_id, password_hash) VALUES(?, ?, ?, ?, ?)",
		user.ID, user.FullName, user.Email, user.StudentID, user.PasswordHash,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	s.events.Record(ctx, models.EventUserRegistered, "info",
		fmt.Sprintf("%s registered", user.Email), nil)

	return s.GetByID(ctx, user.ID)
}

// Authenticate verifies a user's credentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, full_name, email, student_id, password_hash, created_at FROM users WHERE email = ?",
		email,
	)
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.StudentID, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetByID retrieves a single user by their ID.
func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, full_name, email, student_id, created_at FROM users WHERE id = ?", id,
	)
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.StudentID, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func validateRegistration(fullName, email, studentID, password string) error {
	if strings.TrimSpace(fullName) == "" {
		return &ValidationError{Field: "fullName", Reason: "must not be empty"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if strings.TrimSpace(studentID) == "" {
		return &ValidationError{Field: "studentId", Reason: "must not be empty"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}
