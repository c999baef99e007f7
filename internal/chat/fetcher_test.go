package chat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/diogo/chatpanel/internal/api"
	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/models"
)

// gatedClient blocks each prompt until its gate is released.
type gatedClient struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedClient(rawTexts ...string) *gatedClient {
	g := &gatedClient{gates: make(map[string]chan struct{})}
	for _, raw := range rawTexts {
		g.gates[models.CompositePrompt(raw)] = make(chan struct{})
	}
	return g
}

func (g *gatedClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	gate := g.gates[prompt]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return "reply to " + strings.TrimPrefix(prompt, models.Preamble), nil
}

func (g *gatedClient) release(raw string) {
	close(g.gates[models.CompositePrompt(raw)])
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestFetcher_BlankInputIsNoop(t *testing.T) {
	for _, raw := range []string{"", " ", "\t\n", "   \r\n  "} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			store := NewStore()
			client := &api.MockClient{Reply: "unused"}
			f := NewFetcher(client, store)

			if f.Submit(raw) {
				t.Error("Submit should reject blank input")
			}
			f.Wait()

			if store.Len() != 0 {
				t.Errorf("store length = %d, want 0", store.Len())
			}
			if client.Calls() != 0 {
				t.Errorf("client called %d times, want 0", client.Calls())
			}
		})
	}
}

func TestFetcher_UserMessageAppendedBeforeReply(t *testing.T) {
	store := NewStore()
	client := newGatedClient("hi")
	f := NewFetcher(client, store)

	if !f.Submit("hi") {
		t.Fatal("Submit rejected non-blank input")
	}

	msgs := store.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected the user message immediately, got %d messages", len(msgs))
	}
	if msgs[0].Text != "hi" || msgs[0].Sender != models.SenderUser {
		t.Errorf("user message = %+v", msgs[0])
	}
	if f.InFlight() != 1 {
		t.Errorf("InFlight() = %d, want 1", f.InFlight())
	}

	client.release("hi")
	f.Wait()

	msgs = store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages after resolution, got %d", len(msgs))
	}
	if msgs[1].Sender != models.SenderBot || msgs[1].Text != "reply to hi" {
		t.Errorf("bot message = %+v", msgs[1])
	}
	if f.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", f.InFlight())
	}
}

func TestFetcher_SendsCompositePromptStoresRawText(t *testing.T) {
	store := NewStore()
	client := &api.MockClient{Reply: "Hello! ..."}
	f := NewFetcher(client, store)

	raw := "  what is rain?  "
	f.Submit(raw)
	f.Wait()

	if client.Calls() != 1 {
		t.Fatalf("expected exactly one request, got %d", client.Calls())
	}
	if got := client.LastPrompt(); got != models.Preamble+raw {
		t.Errorf("prompt = %q, want preamble + raw text", got)
	}

	msgs := store.Messages()
	if msgs[0].Text != raw {
		t.Errorf("user message should hold the raw text, got %q", msgs[0].Text)
	}
	if msgs[1].Text != "Hello! ..." || msgs[1].Sender != models.SenderBot {
		t.Errorf("bot message = %+v", msgs[1])
	}
}

func TestFetcher_Resolution(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"reply", "Hello! ...", nil, "Hello! ..."},
		{"reply trimmed", "\n  - point one\n", nil, "- point one"},
		{"blank reply", "   ", nil, models.FallbackNoReply},
		{"no content", "", fmt.Errorf("extract: %w", apierrors.ErrNoContent), models.FallbackNoReply},
		{"api error document", "", apierrors.NewAPIError(400, "ep", "API key not valid"), models.FallbackNoReply},
		{"transport failure", "", apierrors.NewNetworkError("generate content", errors.New("refused")), models.FallbackFetchError},
		{"timeout", "", apierrors.NewNetworkError("generate content", apierrors.NewTimeoutError("slow")), models.FallbackFetchError},
		{"body not JSON", "", apierrors.NewParseError("not JSON", ""), models.FallbackFetchError},
		{"unknown error", "", errors.New("boom"), models.FallbackFetchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			f := NewFetcher(&api.MockClient{Reply: tt.reply, Err: tt.err}, store)

			f.Submit("question")
			f.Wait()

			if store.Len() != 2 {
				t.Fatalf("expected exactly 2 messages, got %d", store.Len())
			}
			bot := store.Messages()[1]
			if bot.Sender != models.SenderBot {
				t.Errorf("second message sender = %s, want bot", bot.Sender)
			}
			if bot.Text != tt.want {
				t.Errorf("bot text = %q, want %q", bot.Text, tt.want)
			}
		})
	}
}

func TestFetcher_MissingReplyAtEveryLevel(t *testing.T) {
	bodies := map[string]string{
		"candidates": `{"usageMetadata":{}}`,
		"content":    `{"candidates":[{"finishReason":"STOP"}]}`,
		"parts":      `{"candidates":[{"content":{"role":"model"}}]}`,
		"text":       `{"candidates":[{"content":{"parts":[{}]}}]}`,
	}

	for level, body := range bodies {
		t.Run(level, func(t *testing.T) {
			store := NewStore()
			client := &api.MockClient{
				Func: func(context.Context, string) (string, error) {
					return api.ExtractReply([]byte(body))
				},
			}
			f := NewFetcher(client, store)

			f.Submit("hi")
			f.Wait()

			if got := store.Messages()[1].Text; got != models.FallbackNoReply {
				t.Errorf("bot text = %q, want %q", got, models.FallbackNoReply)
			}
		})
	}
}

func TestFetcher_CompletionOrder(t *testing.T) {
	store := NewStore()
	client := newGatedClient("a", "b")
	f := NewFetcher(client, store)

	f.Submit("a")
	f.Submit("b")

	if f.InFlight() != 2 {
		t.Errorf("InFlight() = %d, want 2", f.InFlight())
	}

	client.release("b")
	waitFor(t, "reply to b", func() bool { return store.Len() == 3 })
	client.release("a")
	f.Wait()

	var got []string
	for _, m := range store.Messages() {
		got = append(got, string(m.Sender)+":"+m.Text)
	}
	want := []string{"user:a", "user:b", "bot:reply to b", "bot:reply to a"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("messages = %v, want %v", got, want)
	}
}

func TestFetcher_ConcurrentSubmissions(t *testing.T) {
	store := NewStore()
	f := NewFetcher(&api.MockClient{Reply: "ok"}, store)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f.Submit(fmt.Sprintf("q%d", i))
		}(i)
	}
	wg.Wait()
	f.Wait()

	users, bots := 0, 0
	for _, m := range store.Messages() {
		if m.IsUser() {
			users++
		} else {
			bots++
		}
	}
	if users != n || bots != n {
		t.Errorf("users = %d, bots = %d, want %d each", users, bots, n)
	}
}

func TestFetcher_LogsTransportFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	store := NewStore()
	f := NewFetcher(&api.MockClient{Err: apierrors.NewNetworkError("generate content", errors.New("refused"))}, store, WithLogger(logger))

	f.Submit("hi")
	f.Wait()

	out := buf.String()
	if !strings.Contains(out, "fetch error") || !strings.Contains(out, "refused") {
		t.Errorf("expected the transport error in the log, got %s", out)
	}

	user := store.Messages()[0]
	if !strings.Contains(out, user.ID) {
		t.Errorf("log entry should carry the request id %s, got %s", user.ID, out)
	}
}
