package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalpass/internal/models"
)

type mockAssistant struct {
	questions []string
	hints     []string
	turn      *models.ChatTurn
	shortlist []models.ESIMPackage
}

func (m *mockAssistant) Ask(_ context.Context, question, countryHint string) (*models.ChatTurn, []models.ESIMPackage) {
	m.questions = append(m.questions, question)
	m.hints = append(m.hints, countryHint)
	if m.turn != nil {
		return m.turn, m.shortlist
	}
	return &models.ChatTurn{Role: models.RoleAssistant, Content: "answer"}, nil
}

func newChatController(assistant *mockAssistant) *ChatController {
	return NewChatController(&mockLogger{}, assistant)
}

func TestChatAsk_ValidQuestion(t *testing.T) {
	assistant := &mockAssistant{
		turn: &models.ChatTurn{Role: models.RoleAssistant, Content: "Try the Ubigi plan."},
		shortlist: []models.ESIMPackage{
			{ID: 1, Country: "Japan", Provider: "Ubigi", Price: 7.50},
		},
	}
	cc := newChatController(assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"question":"best esim for japan?"}`))
	rr := httptest.NewRecorder()
	cc.Ask(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var answer models.ChatAnswer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &answer))
	assert.Equal(t, "Try the Ubigi plan.", answer.Answer)
	require.Len(t, answer.Packages, 1)
	assert.Equal(t, "Ubigi", answer.Packages[0].Provider)

	require.Len(t, assistant.questions, 1)
	assert.Equal(t, "best esim for japan?", assistant.questions[0])
}

func TestChatAsk_CountryHintForwarded(t *testing.T) {
	assistant := &mockAssistant{}
	cc := newChatController(assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"question":"what do you recommend?","countryHint":"Japan"}`))
	rr := httptest.NewRecorder()
	cc.Ask(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, assistant.hints, 1)
	assert.Equal(t, "Japan", assistant.hints[0])
}

func TestChatAsk_EmptyQuestion(t *testing.T) {
	assistant := &mockAssistant{}
	cc := newChatController(assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"question":"   "}`))
	rr := httptest.NewRecorder()
	cc.Ask(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, assistant.questions)
}

func TestChatAsk_InvalidJSON(t *testing.T) {
	assistant := &mockAssistant{}
	cc := newChatController(assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	cc.Ask(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatAsk_NilShortlistMarshalsEmptyArray(t *testing.T) {
	assistant := &mockAssistant{
		turn: &models.ChatTurn{Role: models.RoleAssistant, Content: "Sorry, nothing found."},
	}
	cc := newChatController(assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"question":"esim for atlantis?"}`))
	rr := httptest.NewRecorder()
	cc.Ask(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.JSONEq(t, `[]`, string(body["packages"]))
}
