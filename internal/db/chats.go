package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pruthviraj/career-compass/internal/types"
)

// InsertChatMessage appends one turn to a user's mentor conversation.
func (db *DB) InsertChatMessage(ctx context.Context, userID uuid.UUID, role, content string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (user_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, role, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert chat message: %w", err)
	}
	return id, nil
}

// ListChatHistory retrieves a user's most recent messages in chronological
// order, limited to the last `limit` turns (0 means no limit).
func (db *DB) ListChatHistory(ctx context.Context, userID uuid.UUID, limit int) ([]types.ChatMessage, error) {
	query := `SELECT id, user_id, role, content, created_at
		 FROM chat_messages WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	defer rows.Close()

	var messages []types.ChatMessage
	for rows.Next() {
		var m types.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows arrive newest first so the LIMIT keeps recent turns; flip to
	// chronological order for prompting and display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
