package session

import (
	"context"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Store persists sessions in a local sqlite file so logins survive a
// gateway restart. This file is the only durable state the gateway
// owns; every domain record stays on the backend.
type Store struct {
	db *gorm.DB
}

type sessionRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	AccessToken  string    `gorm:"column:access_token"`
	RefreshToken string    `gorm:"column:refresh_token"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
}

func (sessionRow) TableName() string { return "sessions" }

type viewStateRow struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	ViewKey   string    `gorm:"column:view_key;primaryKey"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (viewStateRow) TableName() string { return "view_states" }

// OpenStore opens (or creates) the session database at path.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        path,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&sessionRow{}, &viewStateRow{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Create persists a new session.
func (s *Store) Create(ctx context.Context, sess Session) error {
	row := sessionRow{
		ID:           sess.ID,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Name:         sess.Name,
		Role:         sess.Role,
		CreatedAt:    sess.CreatedAt,
		ExpiresAt:    sess.ExpiresAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// Get returns the session for id if present and not expired. Expired
// rows are deleted lazily.
func (s *Store) Get(ctx context.Context, id string) (*Session, bool) {
	var row sessionRow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, false
	}
	if !row.ExpiresAt.IsZero() && row.ExpiresAt.Before(time.Now()) {
		_ = s.Delete(ctx, id)
		return nil, false
	}
	sess := Session{
		ID:           row.ID,
		AccessToken:  row.AccessToken,
		RefreshToken: row.RefreshToken,
		Name:         row.Name,
		Role:         row.Role,
		CreatedAt:    row.CreatedAt,
		ExpiresAt:    row.ExpiresAt,
	}
	return &sess, true
}

// Delete removes a session and its view state. Deleting a session that
// is already gone is not an error, so concurrent 401 handlers may all
// call this safely.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&sessionRow{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&viewStateRow{}).Error
}

// DeleteExpired sweeps expired sessions.
func (s *Store) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	return s.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&sessionRow{}).Error
}

// SaveViewState stashes per-view state (form snapshots, selections)
// keyed by session and view.
func (s *Store) SaveViewState(ctx context.Context, sessionID, viewKey string, payload []byte) error {
	row := viewStateRow{
		SessionID: sessionID,
		ViewKey:   viewKey,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Save(&row).Error
}

// ViewState returns the stashed state for one view, if any.
func (s *Store) ViewState(ctx context.Context, sessionID, viewKey string) ([]byte, bool) {
	var row viewStateRow
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND view_key = ?", sessionID, viewKey).
		First(&row).Error
	if err != nil {
		return nil, false
	}
	return row.Payload, true
}
