package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/diogo/chatpanel/internal/models"
)

func TestStore_AppendKeepsOrder(t *testing.T) {
	store := NewStore()

	store.Append(models.NewUserMessage("one"))
	store.Append(models.NewBotMessage("two"))
	store.Append(models.NewUserMessage("three"))

	msgs := store.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, want := range []string{"one", "two", "three"} {
		if msgs[i].Text != want {
			t.Errorf("messages[%d] = %q, want %q", i, msgs[i].Text, want)
		}
	}
	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3", store.Len())
	}
}

func TestStore_MessagesReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Append(models.NewUserMessage("original"))

	msgs := store.Messages()
	msgs[0].Text = "mutated"

	if got := store.Messages()[0].Text; got != "original" {
		t.Errorf("store was mutated through returned slice: %q", got)
	}
}

func TestStore_Last(t *testing.T) {
	store := NewStore()

	if _, ok := store.Last(models.SenderBot); ok {
		t.Error("empty store should have no last bot message")
	}

	store.Append(models.NewBotMessage("first reply"))
	store.Append(models.NewUserMessage("question"))
	store.Append(models.NewBotMessage("second reply"))
	store.Append(models.NewUserMessage("another"))

	msg, ok := store.Last(models.SenderBot)
	if !ok || msg.Text != "second reply" {
		t.Errorf("Last(bot) = %q, %v", msg.Text, ok)
	}

	msg, ok = store.Last(models.SenderUser)
	if !ok || msg.Text != "another" {
		t.Errorf("Last(user) = %q, %v", msg.Text, ok)
	}
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore()
	store.Append(models.NewUserMessage("before"))

	var seen []string
	store.Subscribe(func(msg models.Message) {
		seen = append(seen, msg.Text)
	})
	store.Subscribe(nil)

	store.Append(models.NewUserMessage("a"))
	store.Append(models.NewBotMessage("b"))

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("listener saw %v, want [a b]", seen)
	}
}

func TestStore_ConcurrentAppend(t *testing.T) {
	store := NewStore()

	var mu sync.Mutex
	notified := 0
	store.Subscribe(func(models.Message) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Append(models.NewBotMessage(fmt.Sprintf("m%d", i)))
			_ = store.Messages()
		}(i)
	}
	wg.Wait()

	if store.Len() != n {
		t.Errorf("Len() = %d, want %d", store.Len(), n)
	}
	if notified != n {
		t.Errorf("listener called %d times, want %d", notified, n)
	}

	seen := make(map[string]bool)
	for _, m := range store.Messages() {
		if seen[m.Text] {
			t.Errorf("duplicate message %s", m.Text)
		}
		seen[m.Text] = true
	}
}
