package board

import (
	"testing"

	"github.com/thenoetrevino/lanekit/internal/models"
)

// mustBoard builds a snapshot from lane key -> item keys, in the given lane order.
func mustBoard(t *testing.T, lanes ...models.Lane) Snapshot {
	t.Helper()
	s, err := New(lanes...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func lane(key string, itemKeys ...string) models.Lane {
	l := models.Lane{Key: key, Title: key}
	for _, k := range itemKeys {
		l.Items = append(l.Items, models.Item{Key: k, Title: k})
	}
	return l
}

func keys(items []models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Key
	}
	return out
}

// assertContiguous fails if a lane's orders are not exactly 0..N-1.
func assertContiguous(t *testing.T, s Snapshot, laneKey string) {
	t.Helper()
	for i, item := range s.Items(laneKey) {
		if item.Order != i {
			t.Errorf("lane %s item %s has Order %d at index %d", laneKey, item.Key, item.Order, i)
		}
	}
}
