package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymnarium/visualisers-base/internal/typeid"
)

var (
	ErrInvalidPublisherKey = errors.New("invalid publisher key")
	ErrSessionNotFound     = errors.New("session not found")
)

// Session is one live exchange between an environment publisher and its
// viewers. Sessions exist only in memory and disappear with the process.
type Session struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	HasPublisher bool      `json:"hasPublisher"`
}

// Service guards session creation behind the publisher key and scopes
// the issued tokens to a single session.
type Service struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	keyHash   []byte // bcrypt hash of the publisher key, nil when auth is disabled
	jwtSecret []byte
}

func NewService(publisherKey, jwtSecret string) (*Service, error) {
	s := &Service{
		sessions:  make(map[string]*Session),
		jwtSecret: []byte(jwtSecret),
	}
	if publisherKey != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(publisherKey), 12)
		if err != nil {
			return nil, fmt.Errorf("hash publisher key: %w", err)
		}
		s.keyHash = hash
	}
	return s, nil
}

type CreateResult struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

// Create registers a new session and returns a publisher token for it.
func (s *Service) Create(name, publisherKey string) (*CreateResult, error) {
	if s.keyHash != nil {
		if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(publisherKey)); err != nil {
			return nil, ErrInvalidPublisherKey
		}
	}

	sess := &Session{
		ID:        typeid.NewSessionID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	token, err := s.issueToken(sess.ID)
	if err != nil {
		return nil, err
	}

	return &CreateResult{Session: *sess, Token: token}, nil
}

func (s *Service) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

// List returns all sessions, newest first.
func (s *Service) List() []Session {
	s.mu.RLock()
	sessions := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, *sess)
	}
	s.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions
}

// SetPublisherPresent records whether the session's publisher is
// currently connected.
func (s *Service) SetPublisherPresent(id string, present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.HasPublisher = present
	}
}

// ValidateToken checks a publisher token and returns the session it is
// scoped to.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	if role, _ := claims["role"].(string); role != "publisher" {
		return "", errors.New("invalid token role")
	}

	sessionID, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid token subject")
	}

	return sessionID, nil
}

func (s *Service) issueToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sessionID,
		"role": "publisher",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
