// Package assist calls the Gemini text-generation endpoint for chat-style
// project estimates and bulk blog drafting. Every failure degrades to a fixed
// inline message; nothing here is fatal to the hosting screen.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sitefix/internal/service"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// KeyMissingMessage is returned when no API key is configured; no network
// call is attempted in that case.
const KeyMissingMessage = "AI assistant is not configured. Add an API key in site settings."

const fallbackMessage = "The assistant is unavailable right now. Please try again later."

// ErrNoKey reports an unconfigured client.
var ErrNoKey = errors.New("assist: no API key configured")

// ErrBadResponse reports a reply that could not be interpreted.
var ErrBadResponse = errors.New("assist: malformed model response")

// KeySource resolves the current API key, typically SiteConfig with an
// environment fallback. Returning "" disables the client.
type KeySource func(ctx context.Context) string

// Client is a thin JSON client over the generateContent endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	keySource  KeySource
}

// New creates an assist client. keySource must not be nil.
func New(keySource KeySource) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		endpoint:   defaultEndpoint,
		keySource:  keySource,
	}
}

// NewWithEndpoint creates a client against a custom endpoint, used in tests.
func NewWithEndpoint(keySource KeySource, endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, keySource: keySource}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// BlogDraft is the structured reply expected from DraftPost.
type BlogDraft struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Chat answers a visitor prompt using the agency pricing policy as context.
// It always returns displayable text, never an error.
func (c *Client) Chat(ctx context.Context, prompt string) string {
	instruction := chatInstruction()
	reply, err := c.generate(ctx, instruction+"\n\nCLIENT MESSAGE:\n"+prompt)
	if err != nil {
		if errors.Is(err, ErrNoKey) {
			return KeyMissingMessage
		}
		return fallbackMessage
	}
	return reply
}

// DraftPost asks the model for a blog draft on the topic as strict JSON with
// title, excerpt and content fields.
func (c *Client) DraftPost(ctx context.Context, topic string) (*BlogDraft, error) {
	prompt := fmt.Sprintf(`You write blog posts for SiteFix, a digital agency for small businesses.

Write a post about: %s

Answer STRICTLY as JSON:
{
  "title": "post title",
  "excerpt": "one-sentence teaser",
  "content": "full post body as HTML paragraphs"
}`, topic)

	reply, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var draft BlogDraft
	if err := json.Unmarshal([]byte(stripFences(reply)), &draft); err != nil {
		return nil, ErrBadResponse
	}
	if draft.Title == "" {
		return nil, ErrBadResponse
	}
	return &draft, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	key := c.keySource(ctx)
	if key == "" {
		return "", ErrNoKey
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.endpoint, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", ErrBadResponse
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrBadResponse
	}
	return strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text), nil
}

// chatInstruction embeds the service catalog pricing so estimates quote real
// tiers, plus the reply format the chat widget renders.
func chatInstruction() string {
	var b strings.Builder
	b.WriteString("You are the SiteFix project assistant. Quote only from this price list:\n")
	for _, svc := range service.Catalog() {
		b.WriteString(svc.Name + ":")
		for _, plan := range svc.Plans {
			fmt.Fprintf(&b, " %s $%s;", plan.Name, plan.Price)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nReply in short plain-text paragraphs. Recommend one plan, state its price, and end by suggesting the client place an order.")
	return b.String()
}

// stripFences removes a surrounding markdown code fence from a model reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
