package influencer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores avatars keyed by influencer id.
type Repository interface {
	Save(ctx context.Context, avatar Avatar) error
	FindByInfluencer(ctx context.Context, influencerID string) (Avatar, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	avatars map[string]Avatar
}

// NewMemoryRepository builds an in-memory avatar store.
func NewMemoryRepository() Repository {
	return &memoryRepository{avatars: make(map[string]Avatar)}
}

func (r *memoryRepository) Save(_ context.Context, avatar Avatar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.avatars[avatar.InfluencerID] = avatar
	return nil
}

func (r *memoryRepository) FindByInfluencer(_ context.Context, influencerID string) (Avatar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	avatar, ok := r.avatars[influencerID]
	if !ok {
		return Avatar{}, ErrNotFound
	}
	return avatar, nil
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save upserts the influencer's avatar.
func (r *PostgresRepository) Save(ctx context.Context, avatar Avatar) error {
	_, err := r.db.Exec(ctx, `INSERT INTO avatars (influencer_id, avatar_id, asset_path, voice_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (influencer_id) DO UPDATE SET avatar_id = EXCLUDED.avatar_id, asset_path = EXCLUDED.asset_path,
            voice_id = EXCLUDED.voice_id, created_at = EXCLUDED.created_at`,
		avatar.InfluencerID, avatar.AvatarID, avatar.AssetPath, avatar.VoiceID, avatar.CreatedAt.UTC())
	return err
}

// FindByInfluencer fetches the avatar owned by influencerID.
func (r *PostgresRepository) FindByInfluencer(ctx context.Context, influencerID string) (Avatar, error) {
	row := r.db.QueryRow(ctx, `SELECT influencer_id, avatar_id, asset_path, voice_id, created_at FROM avatars WHERE influencer_id = $1`, influencerID)
	var (
		avatar    Avatar
		createdAt time.Time
	)
	if err := row.Scan(&avatar.InfluencerID, &avatar.AvatarID, &avatar.AssetPath, &avatar.VoiceID, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Avatar{}, ErrNotFound
		}
		return Avatar{}, err
	}
	avatar.CreatedAt = createdAt.UTC()
	return avatar, nil
}
