package state

import "testing"

func TestViewportSize(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"zero width", 0, 1},
		{"narrow", 30, 1},
		{"exactly two lanes", 4 + 2*46, 2},
		{"wide", 200, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState(0)
			s.SetWidth(tt.width)
			if got := s.ViewportSize(); got != tt.want {
				t.Errorf("ViewportSize() at width %d = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestScrollViewport(t *testing.T) {
	s := NewUIState(0)
	s.SetWidth(4 + 2*46) // Two lanes visible

	if s.ScrollViewportLeft() {
		t.Error("ScrollViewportLeft() at offset 0 should not scroll")
	}
	if !s.ScrollViewportRight(3) {
		t.Error("ScrollViewportRight(3) at offset 0 should scroll")
	}
	if s.ViewportOffset() != 1 {
		t.Errorf("ViewportOffset() = %d, want 1", s.ViewportOffset())
	}
	if s.ScrollViewportRight(3) {
		t.Error("ScrollViewportRight(3) at offset 1 should not scroll past the last lane")
	}
	if !s.ScrollViewportLeft() {
		t.Error("ScrollViewportLeft() at offset 1 should scroll")
	}
}

func TestEnsureLaneVisible(t *testing.T) {
	s := NewUIState(0)
	s.SetWidth(4 + 2*46)

	s.EnsureLaneVisible(3)
	if s.ViewportOffset() != 2 {
		t.Errorf("after EnsureLaneVisible(3) offset = %d, want 2", s.ViewportOffset())
	}

	s.EnsureLaneVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("after EnsureLaneVisible(0) offset = %d, want 0", s.ViewportOffset())
	}
}

func TestClampViewport(t *testing.T) {
	s := NewUIState(0)
	s.SetWidth(4 + 2*46)
	s.SetViewportOffset(4)

	s.ClampViewport(3)
	if s.ViewportOffset() != 1 {
		t.Errorf("ClampViewport(3) offset = %d, want 1", s.ViewportOffset())
	}

	s.ClampViewport(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("ClampViewport(0) offset = %d, want 0", s.ViewportOffset())
	}
}

func TestEnsureItemVisible(t *testing.T) {
	s := NewUIState(0)

	s.EnsureItemVisible("todo", 7, 5)
	if got := s.ItemScrollOffset("todo"); got != 3 {
		t.Errorf("scroll offset after selecting item 7 = %d, want 3", got)
	}

	s.EnsureItemVisible("todo", 1, 5)
	if got := s.ItemScrollOffset("todo"); got != 1 {
		t.Errorf("scroll offset after selecting item 1 = %d, want 1", got)
	}

	if got := s.ItemScrollOffset("done"); got != 0 {
		t.Errorf("untouched lane scroll offset = %d, want 0", got)
	}
}

func TestContentHeight(t *testing.T) {
	s := NewUIState(0)
	s.SetHeight(3)
	if got := s.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight() for tiny terminal = %d, want 5", got)
	}

	s.SetHeight(40)
	if got := s.ContentHeight(); got != 36 {
		t.Errorf("ContentHeight() = %d, want 36", got)
	}
}

func TestToggleView(t *testing.T) {
	s := NewUIState(0)
	if s.View() != BoardView {
		t.Fatalf("initial view = %v, want BoardView", s.View())
	}
	s.ToggleView()
	if s.View() != ListView {
		t.Errorf("after toggle view = %v, want ListView", s.View())
	}
	s.ToggleView()
	if s.View() != BoardView {
		t.Errorf("after second toggle view = %v, want BoardView", s.View())
	}
}
