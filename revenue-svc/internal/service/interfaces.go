package service

import (
	"context"
	"time"

	"fooddelivery/revenue-svc/internal/domain"
	"fooddelivery/revenue-svc/internal/storage"
)

type RevenueServiceInterface interface {
	Report(ctx context.Context, uid string, req domain.RevenueReportRequest) (*domain.RevenueReport, error)
}

type ChatServiceInterface interface {
	Send(ctx context.Context, senderID string, input domain.SendMessageInput) error
	Messages(ctx context.Context, chatID string) ([]domain.ChatMessage, error)
}

// UserRepository returns nil, nil for unknown users.
type UserRepository interface {
	GetUser(ctx context.Context, uid string) (*domain.User, error)
}

type OrderRepository interface {
	// ListCompletedOrders returns completed orders placed in [start, end),
	// newest first.
	ListCompletedOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error)
}

type ChatRepository interface {
	UpsertChat(ctx context.Context, chatID string, header domain.ChatHeader) error
	AddMessage(ctx context.Context, chatID string, msg domain.ChatMessage) (string, error)
	ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error)
}

var (
	_ RevenueServiceInterface = (*RevenueService)(nil)
	_ ChatServiceInterface    = (*ChatService)(nil)

	_ UserRepository  = (*storage.FirestoreStore)(nil)
	_ OrderRepository = (*storage.FirestoreStore)(nil)
	_ ChatRepository  = (*storage.FirestoreStore)(nil)
	_ UserRepository  = (*storage.PostgresStore)(nil)
	_ OrderRepository = (*storage.PostgresStore)(nil)
	_ ChatRepository  = (*storage.PostgresStore)(nil)
)
