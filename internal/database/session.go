package database

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/brianbaso/Social-Blog-App/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrTokenGeneration = errors.New("failed to generate session token")
	ErrSessionCreation = errors.New("failed to create session")
	ErrSessionDeletion = errors.New("failed to delete session")
)

const (
	// Default session lifetime
	DefaultSessionTTL = 24 * time.Hour
	// Token length in bytes (32 bytes = 64 hex characters)
	TokenLength = 32
)

type SessionService struct {
	db  *Database
	ttl time.Duration
}

func NewSessionService(db *Database, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{db: db, ttl: ttl}
}

// CreateSession issues a fresh session for the user, replacing any
// sessions they already hold.
func (ss *SessionService) CreateSession(userID string) (*models.Session, error) {
	if err := ss.DeleteUserSessions(userID); err != nil {
		return nil, fmt.Errorf("failed to delete old sessions: %v", err)
	}

	token, err := ss.generateToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	now := time.Now()
	expires := now.Add(ss.ttl)

	query := `INSERT INTO sessions (token, user_id, expires, created) VALUES (?, ?, ?, ?)`
	_, err = ss.db.DBConn.Exec(query, token, userID, expires, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreation, err)
	}

	return &models.Session{
		Token:   token,
		UserID:  userID,
		Expires: expires,
		Created: now,
	}, nil
}

// GetSession fetches a session by token and checks its expiry. Expired
// sessions are removed on read.
func (ss *SessionService) GetSession(token string) (*models.Session, error) {
	var session models.Session

	query := `SELECT token, user_id, expires, created FROM sessions WHERE token = ?`
	err := ss.db.DBConn.QueryRow(query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.Expires,
		&session.Created,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if time.Now().After(session.Expires) {
		ss.DeleteSession(token)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// GetUserBySession resolves the user a session token belongs to.
func (ss *SessionService) GetUserBySession(token string) (*models.User, error) {
	session, err := ss.GetSession(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	query := `SELECT id, username, password, created FROM users WHERE id = ?`
	err = ss.db.DBConn.QueryRow(query, session.UserID).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Created,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			// Drop the session if its user no longer exists
			ss.DeleteSession(token)
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	return &user, nil
}

// DeleteSession removes a session by token.
func (ss *SessionService) DeleteSession(token string) error {
	query := `DELETE FROM sessions WHERE token = ?`
	result, err := ss.db.DBConn.Exec(query, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteUserSessions removes every session held by a user.
func (ss *SessionService) DeleteUserSessions(userID string) error {
	query := `DELETE FROM sessions WHERE user_id = ?`
	_, err := ss.db.DBConn.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}
	return nil
}

// CleanupExpiredSessions removes sessions past their expiry.
func (ss *SessionService) CleanupExpiredSessions() error {
	query := `DELETE FROM sessions WHERE expires < ?`
	_, err := ss.db.DBConn.Exec(query, time.Now())
	if err != nil {
		return fmt.Errorf("failed to clean up expired sessions: %v", err)
	}
	return nil
}

// generateToken produces a cryptographically random token.
func (ss *SessionService) generateToken() (string, error) {
	bytes := make([]byte, TokenLength)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
