package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Ibrahima96/pacao/internal/ai"
	"github.com/Ibrahima96/pacao/internal/model"
)

// contextTurns caps how many prior turns are replayed to the model.
const contextTurns = 5

// ProviderResolver selects an LLM backend per query. Satisfied by
// *ai.Resolver; narrowed here so tests can stub it.
type ProviderResolver interface {
	Select() ai.Provider
}

// AssistantService answers visitor questions and records each exchange in
// the session transcript.
type AssistantService struct {
	resolver    ProviderResolver
	transcripts *TranscriptStore
}

func NewAssistantService(resolver ProviderResolver, transcripts *TranscriptStore) *AssistantService {
	return &AssistantService{resolver: resolver, transcripts: transcripts}
}

// Ask runs one assistant turn. The reply is always a usable French
// sentence: provider failures and the no-provider case degrade to fixed
// strings appended to the transcript like any other answer.
func (s *AssistantService) Ask(ctx context.Context, sessionID, query string) model.AskResponse {
	history := s.transcripts.History(sessionID)

	s.transcripts.Append(sessionID, model.ChatMessage{
		Role:      model.RoleUser,
		Content:   query,
		CreatedAt: time.Now().UnixMilli(),
	})

	provider := s.resolver.Select()

	var reply, providerName string
	if provider == nil {
		reply = ai.MsgNoProvider
	} else {
		providerName = provider.Name()
		text, err := provider.Generate(ctx, query, RenderConversation(history, contextTurns))
		switch {
		case err != nil:
			log.Printf("[Assistant] %s call failed: %v", providerName, err)
			reply = ai.MsgCallFailed
		case text == "":
			reply = ai.MsgEmptyAnswer
		default:
			reply = text
		}
	}

	assistantMsg := model.ChatMessage{
		Role:      model.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UnixMilli(),
	}
	s.transcripts.Append(sessionID, assistantMsg)

	return model.AskResponse{
		SessionID: sessionID,
		Message:   assistantMsg,
		Provider:  providerName,
	}
}

// History returns the ordered transcript for the session.
func (s *AssistantService) History(sessionID string) []model.ChatMessage {
	return s.transcripts.History(sessionID)
}

// Clear wipes the session transcript. Callers gate this behind an
// explicit user confirmation.
func (s *AssistantService) Clear(sessionID string) {
	s.transcripts.Clear(sessionID)
}

// RenderConversation formats the last max turns as the "Client:" /
// "Assistant:" lines the providers expect as context.
func RenderConversation(history []model.ChatMessage, max int) string {
	if len(history) > max {
		history = history[len(history)-max:]
	}
	var b strings.Builder
	for i, msg := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		if msg.Role == model.RoleAssistant {
			b.WriteString("Assistant: ")
		} else {
			b.WriteString("Client: ")
		}
		b.WriteString(msg.Content)
	}
	return b.String()
}
