package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedKey(key string) KeySource {
	return func(context.Context) string { return key }
}

func modelReply(text string) generateResponse {
	return generateResponse{
		Candidates: []candidate{
			{Content: content{Parts: []part{{Text: text}}}},
		},
	}
}

func TestChat_NoKeyShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewWithEndpoint(fixedKey(""), srv.URL, srv.Client())
	reply := c.Chat(context.Background(), "how much for a site?")

	assert.Equal(t, KeyMissingMessage, reply)
	assert.False(t, called, "no network call without a key")
}

func TestChat_ReturnsModelText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(modelReply("The Business plan at $999 fits best."))
	}))
	defer srv.Close()

	c := NewWithEndpoint(fixedKey("key-1"), srv.URL, srv.Client())
	reply := c.Chat(context.Background(), "how much for a site?")

	assert.Equal(t, "The Business plan at $999 fits best.", reply)
}

func TestChat_FailuresDegradeToFallbackText(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(generateResponse{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewWithEndpoint(fixedKey("key-1"), srv.URL, srv.Client())
			reply := c.Chat(context.Background(), "hello")

			assert.Equal(t, fallbackMessage, reply)
		})
	}
}

func TestDraftPost(t *testing.T) {
	draftJSON := `{"title":"Five SEO Quick Wins","excerpt":"Fix these first.","content":"<p>Start with titles.</p>"}`

	tests := []struct {
		name      string
		modelText string
		wantErr   error
	}{
		{name: "plain json", modelText: draftJSON},
		{name: "fenced json", modelText: "```json\n" + draftJSON + "\n```"},
		{name: "free text instead of json", modelText: "Sure! Here is a post about SEO.", wantErr: ErrBadResponse},
		{name: "json missing title", modelText: `{"excerpt":"x","content":"y"}`, wantErr: ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(modelReply(tt.modelText))
			}))
			defer srv.Close()

			c := NewWithEndpoint(fixedKey("key-1"), srv.URL, srv.Client())
			draft, err := c.DraftPost(context.Background(), "seo quick wins")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, draft)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Five SEO Quick Wins", draft.Title)
				assert.Equal(t, "Fix these first.", draft.Excerpt)
				assert.Equal(t, "<p>Start with titles.</p>", draft.Content)
			}
		})
	}
}

func TestDraftPost_NoKey(t *testing.T) {
	c := New(fixedKey(""))
	_, err := c.DraftPost(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoKey)
}
