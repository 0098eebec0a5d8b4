package jsonutil_test

import (
	"strings"
	"testing"

	"cssel/geom"
	"cssel/jsonutil"
)

func TestMarshal(t *testing.T) {
	got, err := jsonutil.Marshal(geom.NewRect(10, 20))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"width":10,"height":20}`; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestUnmarshal(t *testing.T) {
	r, err := jsonutil.Unmarshal[geom.Rect](`{"width":10,"height":20}`)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if r.Width != 10 || r.Height != 20 {
		t.Errorf("Unmarshal() = %+v", r)
	}
	if got := r.Area(); got != 200 {
		t.Errorf("Area() after round trip = %v, want 200", got)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := geom.NewRect(2.5, 4)

	data, err := jsonutil.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := jsonutil.Unmarshal[geom.Rect](data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != *orig {
		t.Errorf("round trip = %+v, want %+v", back, *orig)
	}
}

func TestUnmarshalError(t *testing.T) {
	_, err := jsonutil.Unmarshal[geom.Rect](`{"width":`)
	if err == nil {
		t.Fatal("Unmarshal() error = nil, want decode error")
	}
	if !strings.Contains(err.Error(), "unable to unmarshal") {
		t.Errorf("Unmarshal() error = %v, want wrapped decode error", err)
	}
}
