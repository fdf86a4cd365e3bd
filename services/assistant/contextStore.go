package assistant

import (
	"context"
	"encoding/json"
	"time"

	"homematch/models"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// RedisConversationStore keeps each session's conversation as a JSON blob
// with a TTL, so abandoned sessions expire on their own.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

// Get loads the conversation for the session. A missing key yields a fresh
// conversation, not an error.
func (s *RedisConversationStore) Get(ctx context.Context, sessionID string) (*models.Conversation, error) {
	key := chatContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewConversation(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	var conv models.Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *RedisConversationStore) Set(ctx context.Context, sessionID string, conv *models.Conversation) error {
	key := chatContextPrefix + sessionID
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisConversationStore) Clear(ctx context.Context, sessionID string) error {
	key := chatContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
