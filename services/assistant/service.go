package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	listingRepo "homematch/database/repository/listing"
	"homematch/models"
	"homematch/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	candidateCacheKey = "assistant:candidates"
	candidateCacheTTL = 5 * time.Minute
)

// DefaultAssistantService is the production implementation: redis-backed
// conversation state, mongo-backed candidate listings with a short redis
// cache in front, and the pure engine in the middle. The service itself
// holds no per-session state.
type DefaultAssistantService struct {
	Engine      *Engine
	Store       ConversationStore
	ListingRepo listingRepo.ListingRepository
	CacheClient *redis.Client
}

// ProcessMessage runs one full turn to completion before returning; turns of
// the same session are ordered by the caller.
func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conv, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation %s: %w", sessionID, err)
	}

	candidates, err := s.candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate listings: %w", err)
	}

	res := s.Engine.ProcessTurn(req.Text, conv, candidates)
	res.NewState.SessionID = sessionID

	if err := s.Store.Set(ctx, sessionID, res.NewState); err != nil {
		return nil, fmt.Errorf("failed to save conversation %s: %w", sessionID, err)
	}

	logger.Debug("Assistant turn processed",
		zap.String("sessionId", sessionID),
		zap.String("intent", string(res.Intent.Intent)),
		zap.String("stage", string(res.NewState.Stage)),
		zap.Int("ranked", len(res.NewState.Ranked)),
	)

	return &models.ChatResponse{
		SessionID: sessionID,
		Intent:    res.Intent,
		Entities:  res.Entities,
		Stage:     res.NewState.Stage,
		Reply:     res.Reply,
	}, nil
}

// MoreResults returns the next page of the ranked list retained by the last
// search of the session.
func (s *DefaultAssistantService) MoreResults(ctx context.Context, sessionID string, offset int) (*models.ChatResponse, error) {
	conv, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation %s: %w", sessionID, err)
	}

	resp := &models.ChatResponse{
		SessionID: sessionID,
		Intent:    models.IntentResult{Intent: models.IntentShowHouses, Confidence: 1},
		Entities:  models.EntityBag{},
		Stage:     conv.Stage,
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(conv.Ranked) {
		resp.Reply = models.Reply{
			Text:        "Không còn kết quả nào nữa. Bạn muốn thay đổi tiêu chí không?",
			Suggestions: []string{"Đặt lại"},
		}
		return resp, nil
	}

	end := offset + TopResults
	if end > len(conv.Ranked) {
		end = len(conv.Ranked)
	}
	page := conv.Ranked[offset:end]

	resp.Reply = models.Reply{
		Text:        fmt.Sprintf("Kết quả %d đến %d trong tổng số %d:", offset+1, end, len(conv.Ranked)),
		Suggestions: []string{"Xem thêm", "Đặt lại"},
		Listings:    page,
	}
	return resp, nil
}

// ResetSession discards the stored conversation; the next turn starts from
// the greeting stage.
func (s *DefaultAssistantService) ResetSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// candidates returns the full candidate listing set, served from a short
// redis cache so consecutive chat turns do not hammer mongo.
func (s *DefaultAssistantService) candidates(ctx context.Context) ([]models.Listing, error) {
	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, candidateCacheKey).Result()
		if err == nil && cached != "" {
			var listings []models.Listing
			if err := json.Unmarshal([]byte(cached), &listings); err == nil {
				return listings, nil
			}
			// Fall through to a fresh fetch on unmarshal failure.
		}
	}

	listings, err := s.ListingRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if b, err := json.Marshal(listings); err == nil {
			s.CacheClient.Set(ctx, candidateCacheKey, b, candidateCacheTTL)
		}
	}
	return listings, nil
}
