package assistant

import (
	"context"

	"homematch/models"
)

// AssistantService processes chat turns for the property assistant.
type AssistantService interface {
	// ProcessMessage runs one full turn: load state, run the engine,
	// persist the new state and return the reply.
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	// MoreResults pages through the ranked list retained in the
	// conversation after a search.
	MoreResults(ctx context.Context, sessionID string, offset int) (*models.ChatResponse, error)
	// ResetSession discards the stored conversation state.
	ResetSession(ctx context.Context, sessionID string) error
}

// ConversationStore persists per-session conversation state between turns.
// Writes are last-write-wins; the engine itself stays stateless.
type ConversationStore interface {
	Get(ctx context.Context, sessionID string) (*models.Conversation, error)
	Set(ctx context.Context, sessionID string, conv *models.Conversation) error
	Clear(ctx context.Context, sessionID string) error
}
