package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"modbot/internal/actions"
)

// Store implements actions.Store on PostgreSQL. The database assigns the
// identifier and creation timestamp in one statement, so the returned record
// is the committed fact.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL action store over an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *Store) Create(ctx context.Context, guildID int64, kind actions.Kind, createdByID int64) (actions.Record, error) {
	rec := actions.Record{
		GuildID:     guildID,
		Kind:        kind,
		CreatedByID: createdByID,
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO action_records (guild_id, kind, created_by_id, created)
		VALUES ($1, $2, $3, now() AT TIME ZONE 'utc')
		RETURNING id, created`,
		guildID, string(kind), createdByID,
	).Scan(&rec.ID, &rec.Created)
	if err != nil {
		return actions.Record{}, fmt.Errorf("insert action record: %w", err)
	}
	rec.Created = rec.Created.UTC()
	return rec, nil
}

func (s *Store) ListRecent(ctx context.Context, guildID int64, limit int) ([]actions.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, guild_id, kind, created, created_by_id
		FROM action_records
		WHERE guild_id = $1
		ORDER BY id DESC
		LIMIT $2`,
		guildID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list action records: %w", err)
	}
	defer rows.Close()

	var out []actions.Record
	for rows.Next() {
		var rec actions.Record
		var kind string
		if err := rows.Scan(&rec.ID, &rec.GuildID, &kind, &rec.Created, &rec.CreatedByID); err != nil {
			return nil, fmt.Errorf("scan action record: %w", err)
		}
		rec.Kind = actions.Kind(kind)
		rec.Created = rec.Created.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
