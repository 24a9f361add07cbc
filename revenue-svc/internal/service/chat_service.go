package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/revenue-svc/internal/domain"
)

type ChatService struct {
	users  UserRepository
	chats  ChatRepository
	logger *zap.Logger
}

func NewChatService(users UserRepository, chats ChatRepository, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{users: users, chats: chats, logger: logger}
}

// Send stamps the chat header with both participant names, then appends the
// message. A failed name lookup falls back to the default name.
func (s *ChatService) Send(ctx context.Context, senderID string, input domain.SendMessageInput) error {
	log := logging.FromContext(ctx, s.logger).With(zap.String("chat_id", input.ChatID))

	customerName := domain.DefaultCustomerName
	shipperName := domain.DefaultShipperName

	// Lookups run independently; a failed one keeps its default name.
	var g errgroup.Group
	g.Go(func() error {
		name, err := s.lookupName(ctx, input.CustomerID)
		if name != "" {
			customerName = name
		}
		return err
	})
	g.Go(func() error {
		name, err := s.lookupName(ctx, input.ShipperID)
		if name != "" {
			shipperName = name
		}
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("participant name lookup failed, using default name", zap.Error(err))
	}

	header := domain.ChatHeader{
		UserID:       input.CustomerID,
		ShipperID:    input.ShipperID,
		CustomerName: customerName,
		ShipperName:  shipperName,
	}
	if err := s.chats.UpsertChat(ctx, input.ChatID, header); err != nil {
		return apperrors.Internal("failed to create chat", err)
	}

	id, err := s.chats.AddMessage(ctx, input.ChatID, domain.ChatMessage{
		SenderID:    senderID,
		Message:     input.Message,
		CustomerUID: input.CustomerUID,
		ShipperUID:  input.ShipperUID,
	})
	if err != nil {
		return apperrors.Internal("failed to add message", err)
	}
	log.Debug("chat message stored", zap.String("message_id", id))
	return nil
}

func (s *ChatService) lookupName(ctx context.Context, uid string) (string, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("look up user %s: %w", uid, err)
	}
	if user == nil {
		return "", nil
	}
	return user.Name, nil
}

// Messages lists a chat oldest first.
func (s *ChatService) Messages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	if chatID == "" {
		return nil, apperrors.InvalidArgument("chatId is required")
	}
	messages, err := s.chats.ListMessages(ctx, chatID)
	if err != nil {
		return nil, apperrors.Internal("failed to list messages", err)
	}
	return messages, nil
}
