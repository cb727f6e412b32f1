package figures_test

import (
	"errors"
	"testing"

	"selc/figures"
)

func TestRectangle_Area(t *testing.T) {
	r := figures.NewRectangle(10, 2)
	if got := r.Area(); got != 20 {
		t.Errorf("Area() = %v, want 20", got)
	}
}

func TestRectangle_JSONRoundTrip(t *testing.T) {
	text, err := figures.ToJSON(figures.NewRectangle(10, 10))
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if want := `{"width":10,"height":10}`; text != want {
		t.Errorf("ToJSON() = %q, want %q", text, want)
	}

	r, err := figures.FromJSON[figures.Rectangle]([]byte(text))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	// behavior is attached after deserialization
	if got := r.Area(); got != 100 {
		t.Errorf("Area() after round trip = %v, want 100", got)
	}
}

func TestFromJSON_InvalidText(t *testing.T) {
	if _, err := figures.FromJSON[figures.Rectangle]([]byte("{broken")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestDecodeShape(t *testing.T) {
	s, err := figures.DecodeShape([]byte(`{"kind":"rectangle","width":3,"height":4}`))
	if err != nil {
		t.Fatalf("DecodeShape() error = %v", err)
	}
	if got := s.Area(); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if _, ok := s.(*figures.Rectangle); !ok {
		t.Errorf("DecodeShape() concrete type = %T, want *figures.Rectangle", s)
	}
}

func TestDecodeShape_UnknownKind(t *testing.T) {
	_, err := figures.DecodeShape([]byte(`{"kind":"pentagon"}`))
	if !errors.Is(err, figures.ErrUnknownKind) {
		t.Errorf("DecodeShape() error = %v, want ErrUnknownKind", err)
	}
}
