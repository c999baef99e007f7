package chat

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/diogo/chatpanel/internal/api"
	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/models"
)

// Fetcher turns a user submission into one user message, one request and,
// once the request settles, one bot message.
//
// Every submission runs in its own goroutine. There is no queue, no
// mutual exclusion and no cancellation: bot messages land in the store in
// the order responses arrive.
type Fetcher struct {
	client api.Generator
	store  *Store
	logger zerolog.Logger

	wg       sync.WaitGroup
	inFlight atomic.Int64
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithLogger sets the logger used for failed fetches
func WithLogger(logger zerolog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a fetcher appending to store
func NewFetcher(client api.Generator, store *Store, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: client,
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Submit appends raw as a user message and starts the fetch for it. It
// returns false, doing nothing, when raw is blank after trimming. The
// user message is in the store by the time Submit returns.
func (f *Fetcher) Submit(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	userMsg := models.NewUserMessage(raw)
	f.store.Append(userMsg)

	f.wg.Add(1)
	f.inFlight.Add(1)
	go f.fetch(userMsg.ID, models.CompositePrompt(raw))

	return true
}

func (f *Fetcher) fetch(requestID, prompt string) {
	defer f.wg.Done()
	defer f.inFlight.Add(-1)

	start := time.Now()
	reply, err := f.client.GenerateContent(context.Background(), prompt)
	text := f.resolve(requestID, reply, err, time.Since(start))

	f.store.Append(models.NewBotMessage(text))
}

// resolve maps a fetch outcome to the text shown to the user
func (f *Fetcher) resolve(requestID, reply string, err error, elapsed time.Duration) string {
	switch {
	case err == nil:
		if text := strings.TrimSpace(reply); text != "" {
			f.logger.Debug().
				Str("request_id", requestID).
				Dur("elapsed", elapsed).
				Int("reply_len", len(text)).
				Msg("reply received")
			return text
		}
		f.logger.Warn().
			Str("request_id", requestID).
			Msg("empty reply")
		return models.FallbackNoReply

	case apierrors.IsAPIError(err), apierrors.IsNoContent(err):
		// The server answered, just not with a usable reply.
		f.logger.Warn().
			Err(err).
			Str("request_id", requestID).
			Int("status", apierrors.GetHTTPStatus(err)).
			Msg("no usable reply")
		return models.FallbackNoReply

	default:
		f.logger.Error().
			Err(err).
			Str("request_id", requestID).
			Bool("timeout", apierrors.IsTimeoutError(err)).
			Dur("elapsed", elapsed).
			Msg("fetch error")
		return models.FallbackFetchError
	}
}

// InFlight returns the number of fetches that have not settled yet
func (f *Fetcher) InFlight() int {
	return int(f.inFlight.Load())
}

// Wait blocks until every fetch started so far has appended its reply.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}
