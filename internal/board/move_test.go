package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/lanekit/internal/models"
)

func TestMove_ToEmptyLane(t *testing.T) {
	s := mustBoard(t, lane("L1", "a", "b", "c"), lane("L2"))

	got, err := Move(s, &models.Move{SourceLane: "L1", SourceIndex: 1, DestLane: "L2", DestIndex: 0})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	wantL1 := []models.Item{{Key: "a", Title: "a", Order: 0}, {Key: "c", Title: "c", Order: 1}}
	wantL2 := []models.Item{{Key: "b", Title: "b", Order: 0}}
	if diff := cmp.Diff(wantL1, got.Items("L1")); diff != "" {
		t.Errorf("L1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantL2, got.Items("L2")); diff != "" {
		t.Errorf("L2 mismatch (-want +got):\n%s", diff)
	}
}

func TestMove_NilIsNoOp(t *testing.T) {
	s := mustBoard(t, lane("L1", "a", "b"), lane("L2", "c"))
	before := s.Lanes()

	got, err := Move(s, nil)
	if err != nil {
		t.Fatalf("Move(nil) error = %v, want nil", err)
	}
	if diff := cmp.Diff(before, got.Lanes()); diff != "" {
		t.Errorf("Move(nil) changed the board (-want +got):\n%s", diff)
	}
	if got.Fingerprint() != s.Fingerprint() {
		t.Error("Move(nil) changed the fingerprint")
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	s := mustBoard(t, lane("L1", "a", "b", "c"), lane("L2", "x"))
	before := s.Lanes()
	fp := s.Fingerprint()

	moves := []*models.Move{
		{SourceLane: "L1", SourceIndex: 0, DestLane: "L2", DestIndex: 1},
		{SourceLane: "L1", SourceIndex: 2, DestLane: "L1", DestIndex: 0},
	}
	for _, m := range moves {
		if _, err := Move(s, m); err != nil {
			t.Fatalf("Move(%+v) error = %v", m, err)
		}
	}

	if diff := cmp.Diff(before, s.Lanes()); diff != "" {
		t.Errorf("input snapshot mutated (-want +got):\n%s", diff)
	}
	if s.Fingerprint() != fp {
		t.Error("input fingerprint changed")
	}
}

func TestMove_OrdersContiguous(t *testing.T) {
	tests := []struct {
		name     string
		move     models.Move
		wantSrc  []string
		wantDest []string
	}{
		{
			name:     "to head of other lane",
			move:     models.Move{SourceLane: "L1", SourceIndex: 0, DestLane: "L2", DestIndex: 0},
			wantSrc:  []string{"b", "c"},
			wantDest: []string{"a", "x", "y"},
		},
		{
			name:     "to tail of other lane",
			move:     models.Move{SourceLane: "L1", SourceIndex: 2, DestLane: "L2", DestIndex: 2},
			wantSrc:  []string{"a", "b"},
			wantDest: []string{"x", "y", "c"},
		},
		{
			name:     "destination index clamped high",
			move:     models.Move{SourceLane: "L1", SourceIndex: 1, DestLane: "L2", DestIndex: 42},
			wantSrc:  []string{"a", "c"},
			wantDest: []string{"x", "y", "b"},
		},
		{
			name:     "destination index clamped low",
			move:     models.Move{SourceLane: "L1", SourceIndex: 1, DestLane: "L2", DestIndex: -3},
			wantSrc:  []string{"a", "c"},
			wantDest: []string{"b", "x", "y"},
		},
		{
			name:     "within lane downward",
			move:     models.Move{SourceLane: "L1", SourceIndex: 0, DestLane: "L1", DestIndex: 2},
			wantSrc:  []string{"b", "c", "a"},
			wantDest: []string{"b", "c", "a"},
		},
		{
			name:     "within lane upward",
			move:     models.Move{SourceLane: "L1", SourceIndex: 2, DestLane: "L1", DestIndex: 0},
			wantSrc:  []string{"c", "a", "b"},
			wantDest: []string{"c", "a", "b"},
		},
		{
			name:     "within lane past end clamps to length after removal",
			move:     models.Move{SourceLane: "L1", SourceIndex: 0, DestLane: "L1", DestIndex: 3},
			wantSrc:  []string{"b", "c", "a"},
			wantDest: []string{"b", "c", "a"},
		},
		{
			name:     "within lane same slot",
			move:     models.Move{SourceLane: "L1", SourceIndex: 1, DestLane: "L1", DestIndex: 1},
			wantSrc:  []string{"a", "b", "c"},
			wantDest: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustBoard(t, lane("L1", "a", "b", "c"), lane("L2", "x", "y"))

			got, err := Move(s, &tt.move)
			if err != nil {
				t.Fatalf("Move() error = %v", err)
			}

			if diff := cmp.Diff(tt.wantSrc, keys(got.Items(tt.move.SourceLane))); diff != "" {
				t.Errorf("source lane mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantDest, keys(got.Items(tt.move.DestLane))); diff != "" {
				t.Errorf("destination lane mismatch (-want +got):\n%s", diff)
			}
			assertContiguous(t, got, tt.move.SourceLane)
			assertContiguous(t, got, tt.move.DestLane)
			if got.ItemCount() != s.ItemCount() {
				t.Errorf("ItemCount() = %d, want %d", got.ItemCount(), s.ItemCount())
			}
		})
	}
}

func TestMove_Errors(t *testing.T) {
	s := mustBoard(t, lane("L1", "a"), lane("L2"))

	tests := []struct {
		name string
		move models.Move
		want error
	}{
		{"unknown source lane", models.Move{SourceLane: "nope", DestLane: "L2"}, models.ErrLaneNotFound},
		{"unknown destination lane", models.Move{SourceLane: "L1", DestLane: "nope"}, models.ErrLaneNotFound},
		{"source index too large", models.Move{SourceLane: "L1", SourceIndex: 1, DestLane: "L2"}, models.ErrInvalidIndex},
		{"negative source index", models.Move{SourceLane: "L1", SourceIndex: -1, DestLane: "L2"}, models.ErrInvalidIndex},
		{"empty source lane", models.Move{SourceLane: "L2", SourceIndex: 0, DestLane: "L1"}, models.ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Move(s, &tt.move)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Move() error = %v, want %v", err, tt.want)
			}
			if !got.Equal(s) {
				t.Error("failed Move() returned a different snapshot")
			}
		})
	}
}

// Moving an item to another lane and back to its original index restores the
// source lane exactly. The other lane is only restored if nothing else moved
// inside it in between.
func TestMove_RoundTrip(t *testing.T) {
	s := mustBoard(t, lane("A", "a", "b", "c"), lane("B", "x", "y", "z"))
	originalA := s.Items("A")
	originalB := s.Items("B")

	t.Run("restores both lanes when undisturbed", func(t *testing.T) {
		out, err := Move(s, &models.Move{SourceLane: "A", SourceIndex: 1, DestLane: "B", DestIndex: 2})
		if err != nil {
			t.Fatal(err)
		}
		back, err := Move(out, &models.Move{SourceLane: "B", SourceIndex: 2, DestLane: "A", DestIndex: 1})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(originalA, back.Items("A")); diff != "" {
			t.Errorf("lane A not restored (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(originalB, back.Items("B")); diff != "" {
			t.Errorf("lane B not restored (-want +got):\n%s", diff)
		}
	})

	t.Run("restores source lane but not a reshuffled destination", func(t *testing.T) {
		out, err := Move(s, &models.Move{SourceLane: "A", SourceIndex: 1, DestLane: "B", DestIndex: 0})
		if err != nil {
			t.Fatal(err)
		}
		// B is now [b x y z]; z jumps to the front while b is away
		out, err = Move(out, &models.Move{SourceLane: "B", SourceIndex: 3, DestLane: "B", DestIndex: 0})
		if err != nil {
			t.Fatal(err)
		}
		_, idx, ok := out.FindItem("b")
		if !ok {
			t.Fatal("item b lost")
		}
		back, err := Move(out, &models.Move{SourceLane: "B", SourceIndex: idx, DestLane: "A", DestIndex: 1})
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(originalA, back.Items("A")); diff != "" {
			t.Errorf("lane A not restored (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"z", "x", "y"}, keys(back.Items("B"))); diff != "" {
			t.Errorf("lane B mismatch (-want +got):\n%s", diff)
		}
		if cmp.Equal(originalB, back.Items("B")) {
			t.Error("lane B unexpectedly restored after an intervening reorder")
		}
		assertContiguous(t, back, "B")
	})
}

func TestMove_UntouchedLanesShared(t *testing.T) {
	s := mustBoard(t, lane("L1", "a"), lane("L2"), lane("L3", "q", "r"))
	got, err := Move(s, &models.Move{SourceLane: "L1", SourceIndex: 0, DestLane: "L2", DestIndex: 0})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"L1", "L2"}, TouchedLanes(s, got)); diff != "" {
		t.Errorf("TouchedLanes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Items("L3"), got.Items("L3")); diff != "" {
		t.Errorf("L3 changed (-want +got):\n%s", diff)
	}
}
