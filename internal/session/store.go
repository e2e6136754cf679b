// Package session owns the durable client-side session: the bearer token
// issued by the TJ-Track API plus the user profile it belongs to. Nothing
// else is persisted locally; every other resource lives on the server.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tjtrack/tjtrack-web/internal/models"
)

// Record is the gorm-persisted session row.
type Record struct {
	ID        string `gorm:"primaryKey;size:36"`
	Token     string `gorm:"size:2048;not null"`
	UserJSON  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string { return "sessions" }

// Session is the hydrated in-memory view handed to request handlers.
type Session struct {
	ID    string
	Token string
	User  *models.ProfileResponse
}

// IsAuthenticated holds iff both the token and the profile are present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Store persists sessions. It is constructed once in main and injected into
// the middleware and handlers; there is no package-level state.
type Store struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewStore migrates the sessions table and returns a ready store.
func NewStore(db *gorm.DB, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Login persists a fresh session and returns its identifier.
func (s *Store) Login(token string, user *models.ProfileResponse) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	rec := Record{ID: uuid.NewString(), Token: token, UserJSON: string(payload)}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Get hydrates the session with the given id. A missing row yields nil. A
// row whose profile payload no longer parses is discarded and nil is
// returned: the session simply starts over unauthenticated.
func (s *Store) Get(id string) *Session {
	if id == "" {
		return nil
	}
	var rec Record
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnw("session lookup failed", "err", err)
		}
		return nil
	}
	var user models.ProfileResponse
	if err := json.Unmarshal([]byte(rec.UserJSON), &user); err != nil {
		s.log.Warnw("discarding corrupt session payload", "session", id)
		s.db.Delete(&Record{}, "id = ?", id)
		return nil
	}
	return &Session{ID: rec.ID, Token: rec.Token, User: &user}
}

// UpdateUser replaces the cached profile without touching the token.
func (s *Store) UpdateUser(id string, user *models.ProfileResponse) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Model(&Record{}).Where("id = ?", id).
		Update("user_json", string(payload)).Error
}

// Logout destroys the session.
func (s *Store) Logout(id string) error {
	if id == "" {
		return nil
	}
	return s.db.Delete(&Record{}, "id = ?", id).Error
}
