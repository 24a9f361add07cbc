package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fooddelivery/revenue-svc/internal/domain"
)

const (
	usersCollection    = "users"
	ordersCollection   = "orders"
	chatsCollection    = "chats"
	messagesCollection = "messages"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	doc, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	data := doc.Data()
	name, _ := data["name"].(string)
	role, _ := data["role"].(string)
	return &domain.User{ID: uid, Name: name, Role: role}, nil
}

func (s *FirestoreStore) ListCompletedOrders(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	iter := s.client.Collection(ordersCollection).
		Where("status", "==", domain.OrderStatusCompleted).
		Where("timestamp", ">=", start).
		Where("timestamp", "<", end).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var orders []domain.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		orders = append(orders, OrderFromData(doc.Ref.ID, doc.Data()))
	}
	return orders, nil
}

func (s *FirestoreStore) chat(chatID string) *firestore.DocumentRef {
	return s.client.Collection(chatsCollection).Doc(chatID)
}

func (s *FirestoreStore) UpsertChat(ctx context.Context, chatID string, header domain.ChatHeader) error {
	_, err := s.chat(chatID).Set(ctx, map[string]any{
		"userId":       header.UserID,
		"shipperId":    header.ShipperID,
		"customerName": header.CustomerName,
		"shipperName":  header.ShipperName,
		"timestamp":    firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert chat: %w", err)
	}
	return nil
}

func (s *FirestoreStore) AddMessage(ctx context.Context, chatID string, msg domain.ChatMessage) (string, error) {
	ref, _, err := s.chat(chatID).Collection(messagesCollection).Add(ctx, map[string]any{
		"senderId":    msg.SenderID,
		"message":     msg.Message,
		"timestamp":   firestore.ServerTimestamp,
		"customerUID": msg.CustomerUID,
		"shipperUID":  msg.ShipperUID,
	})
	if err != nil {
		return "", fmt.Errorf("add message: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	docs, err := s.chat(chatID).Collection(messagesCollection).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, MessageFromData(doc.Ref.ID, doc.Data()))
	}
	return messages, nil
}

// OrderFromData treats a missing amount as zero and skips malformed items.
func OrderFromData(id string, data map[string]any) domain.Order {
	order := domain.Order{ID: id}
	order.Status, _ = data["status"].(string)
	order.TotalAmount = number(data["totalAmount"])
	order.Timestamp, _ = data["timestamp"].(time.Time)

	raw, _ := data["items"].([]any)
	for _, entry := range raw {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := item["name"].(string)
		order.Items = append(order.Items, domain.OrderItem{Name: name, Quantity: int(number(item["quantity"]))})
	}
	return order
}

func MessageFromData(id string, data map[string]any) domain.ChatMessage {
	msg := domain.ChatMessage{ID: id}
	msg.SenderID, _ = data["senderId"].(string)
	msg.Message, _ = data["message"].(string)
	msg.Timestamp, _ = data["timestamp"].(time.Time)
	msg.CustomerUID, _ = data["customerUID"].(string)
	msg.ShipperUID, _ = data["shipperUID"].(string)
	return msg
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
