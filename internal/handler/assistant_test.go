package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Ibrahima96/pacao/internal/ai"
	"github.com/Ibrahima96/pacao/internal/model"
	"github.com/Ibrahima96/pacao/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedProvider struct {
	reply string
}

func (p *fixedProvider) Name() string { return "test" }

func (p *fixedProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return p.reply, nil
}

type fixedResolver struct {
	provider ai.Provider
}

func (r *fixedResolver) Select() ai.Provider { return r.provider }

func newAssistantApp(provider ai.Provider) (*fiber.App, *service.TranscriptStore) {
	transcripts := service.NewTranscriptStore(30 * time.Minute)
	h := NewAssistantHandler(service.NewAssistantService(&fixedResolver{provider: provider}, transcripts))
	app := fiber.New()
	app.Post("/ask", h.Ask)
	app.Get("/history", h.History)
	app.Delete("/history", h.Clear)
	return app, transcripts
}

func TestAskMintsSessionIDWhenMissing(t *testing.T) {
	app, _ := newAssistantApp(&fixedProvider{reply: "Bonjour !"})

	status, out := doJSON(t, app, "POST", "/ask", `{"query":"Faites-vous du flocage ?"}`)
	require.Equal(t, 200, status)

	var resp model.AskResponse
	require.NoError(t, json.Unmarshal(out["session_id"], &resp.SessionID))
	require.NoError(t, json.Unmarshal(out["message"], &resp.Message))

	_, err := uuid.Parse(resp.SessionID)
	assert.NoError(t, err, "minted id should be a uuid")
	assert.Equal(t, "Bonjour !", resp.Message.Content)
	assert.Equal(t, model.RoleAssistant, resp.Message.Role)
}

func TestAskKeepsCallerSessionID(t *testing.T) {
	app, transcripts := newAssistantApp(&fixedProvider{reply: "Oui."})

	status, out := doJSON(t, app, "POST", "/ask", `{"session_id":"sess-1","query":"Bonjour"}`)
	require.Equal(t, 200, status)
	assert.Equal(t, `"sess-1"`, string(out["session_id"]))

	history := transcripts.History("sess-1")
	require.Len(t, history, 2)
	assert.Equal(t, model.RoleUser, history[0].Role)
	assert.Equal(t, model.RoleAssistant, history[1].Role)
}

func TestAskRejectsBlankQuery(t *testing.T) {
	app, _ := newAssistantApp(&fixedProvider{reply: "Oui."})

	status, out := doJSON(t, app, "POST", "/ask", `{"query":"   "}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, string(out["error"]), "query")
}

func TestHistoryReturnsEmptyListForUnknownSession(t *testing.T) {
	app, _ := newAssistantApp(nil)

	status, out := doJSON(t, app, "GET", "/history?session_id=nope", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "[]", string(out["messages"]))

	status, _ = doJSON(t, app, "GET", "/history", "")
	assert.Equal(t, 400, status)
}

func TestClearRequiresConfirmation(t *testing.T) {
	app, transcripts := newAssistantApp(&fixedProvider{reply: "Oui."})
	doJSON(t, app, "POST", "/ask", `{"session_id":"sess-2","query":"Bonjour"}`)

	status, _ := doJSON(t, app, "DELETE", "/history?session_id=sess-2", "")
	assert.Equal(t, 400, status)
	assert.Len(t, transcripts.History("sess-2"), 2)

	status, _ = doJSON(t, app, "DELETE", "/history?session_id=sess-2&confirm=true", "")
	assert.Equal(t, 200, status)
	assert.Empty(t, transcripts.History("sess-2"))
}
