package database

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brianbaso/Social-Blog-App/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameExists     = errors.New("a user with that username already exists")
	ErrShortUsername      = errors.New("username must be at least 3 characters")
	ErrLongUsername       = errors.New("username must not exceed 50 characters")
	ErrInvalidUsername    = errors.New("username may only contain letters, digits, underscore and dash")
	ErrShortPassword      = errors.New("password must be at least 6 characters")
	ErrLongPassword       = errors.New("password must not exceed 128 characters")
	ErrPasswordHashFailed = errors.New("failed to hash password")
	ErrUserCreateFailed   = errors.New("failed to create user")

	// A single error for unknown username and wrong password alike,
	// so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type UserService struct {
	db *Database
}

func NewUserService(db *Database) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (us *UserService) CreateUser(username, password string) (*models.User, error) {
	if err := us.validateUserData(username, password); err != nil {
		return nil, err
	}

	if err := us.checkUsernameUniqueness(username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordHashFailed, err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashedPassword,
		Created:  time.Now(),
	}

	query := `INSERT INTO users (id, username, password, created) VALUES (?, ?, ?, ?)`
	_, err = us.db.DBConn.Exec(query, user.ID, user.Username, user.Password, user.Created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	return user, nil
}

// VerifyUser checks a username/password pair and returns the matching
// user. Unknown usernames and wrong passwords fail identically.
func (us *UserService) VerifyUser(username, password string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, password, created FROM users WHERE username = ?`
	err := us.db.DBConn.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUser fetches a user by ID.
func (us *UserService) GetUser(id string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, password, created FROM users WHERE id = ?`
	err := us.db.DBConn.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.Created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &user, nil
}

// checkUsernameUniqueness enforces username uniqueness at the
// application level; the schema carries no UNIQUE constraint.
func (us *UserService) checkUsernameUniqueness(username string) error {
	query := `SELECT 1 FROM users WHERE username = ?`
	var exists int
	err := us.db.DBConn.QueryRow(query, username).Scan(&exists)
	if err != sql.ErrNoRows {
		if err == nil {
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to check username uniqueness: %v", err)
	}
	return nil
}

func (us *UserService) validateUserData(username, password string) error {
	if err := us.validateUsername(username); err != nil {
		return err
	}
	return us.validatePassword(password)
}

func (us *UserService) validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return ErrShortUsername
	}
	if len(username) > 50 {
		return ErrLongUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

func (us *UserService) validatePassword(password string) error {
	if len(password) < 6 {
		return ErrShortPassword
	}
	if len(password) > 128 {
		return ErrLongPassword
	}
	return nil
}
