package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fooddelivery/revenue-svc/internal/domain"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	var user domain.User
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, COALESCE(name, ''), COALESCE(role, '')
		FROM users
		WHERE id = $1
	`, uid).Scan(&user.ID, &user.Name, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// ListCompletedOrders joins the order lines in one query; rows arrive
// grouped by order, newest order first.
func (s *PostgresStore) ListCompletedOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT o.id, o.total_amount, o.placed_at, oi.name, oi.quantity
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = $1 AND o.placed_at >= $2 AND o.placed_at < $3
		ORDER BY o.placed_at DESC, o.id, oi.id
	`, domain.OrderStatusCompleted, start, end)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			id       string
			amount   float64
			placedAt time.Time
			name     sql.NullString
			quantity sql.NullInt64
		)
		if err := rows.Scan(&id, &amount, &placedAt, &name, &quantity); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if len(orders) == 0 || orders[len(orders)-1].ID != id {
			orders = append(orders, domain.Order{
				ID:          id,
				Status:      domain.OrderStatusCompleted,
				TotalAmount: amount,
				Timestamp:   placedAt,
			})
		}
		if name.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, domain.OrderItem{Name: name.String, Quantity: int(quantity.Int64)})
		}
	}
	return orders, rows.Err()
}

func (s *PostgresStore) UpsertChat(ctx context.Context, chatID string, header domain.ChatHeader) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO chats (id, user_id, shipper_id, customer_name, shipper_name, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			shipper_id = EXCLUDED.shipper_id,
			customer_name = EXCLUDED.customer_name,
			shipper_name = EXCLUDED.shipper_name,
			updated_at = EXCLUDED.updated_at
	`, chatID, header.UserID, header.ShipperID, header.CustomerName, header.ShipperName)
	if err != nil {
		return fmt.Errorf("upsert chat: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddMessage(ctx context.Context, chatID string, msg domain.ChatMessage) (string, error) {
	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO chat_messages (id, chat_id, sender_id, message, customer_uid, shipper_uid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, id, chatID, msg.SenderID, msg.Message, msg.CustomerUID, msg.ShipperUID)
	if err != nil {
		return "", fmt.Errorf("add message: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, sender_id, message, created_at, customer_uid, shipper_uid
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.ChatMessage{}
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Message, &m.Timestamp, &m.CustomerUID, &m.ShipperUID); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
