package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// TurnRepository persists the operator-side transcript of webhook turns.
type TurnRepository interface {
	Create(ctx context.Context, turn domain.Turn) error
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Turn, error)
}

// PgTurnRepository implements TurnRepository on pgxpool.
type PgTurnRepository struct {
	pool *pgxpool.Pool
}

func NewPgTurnRepository(pool *pgxpool.Pool) *PgTurnRepository {
	return &PgTurnRepository{pool: pool}
}

func (r *PgTurnRepository) Create(ctx context.Context, turn domain.Turn) error {
	const query = `
		INSERT INTO turns (id, session_id, action, user_message, emotion, score, reply, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var emotion interface{}
	if turn.Emotion != "" {
		emotion = string(turn.Emotion)
	}

	_, err := r.pool.Exec(ctx, query,
		turn.ID,
		turn.SessionID,
		turn.Action,
		turn.UserMessage,
		emotion,
		turn.Score,
		turn.Reply,
		turn.CreatedAt,
	)
	return err
}

func (r *PgTurnRepository) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	const query = `
		SELECT id, session_id, action, user_message, emotion, score, reply, created_at
		FROM turns
		WHERE session_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var turn domain.Turn
		var emotion *string

		err = rows.Scan(
			&turn.ID,
			&turn.SessionID,
			&turn.Action,
			&turn.UserMessage,
			&emotion,
			&turn.Score,
			&turn.Reply,
			&turn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if emotion != nil {
			turn.Emotion, _ = domain.ParseEmotion(*emotion)
		}
		turns = append(turns, turn)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return turns, nil
}

// NoopTurnRepository is used when no database is configured; the transcript
// side channel is simply off.
type NoopTurnRepository struct{}

func (NoopTurnRepository) Create(context.Context, domain.Turn) error { return nil }

func (NoopTurnRepository) ListBySessionID(context.Context, string) ([]domain.Turn, error) {
	return nil, nil
}
