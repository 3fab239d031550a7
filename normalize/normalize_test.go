package normalize_test

import (
	"testing"

	"github.com/gigfit/backend/normalize"
)

// ── Bool ───────────────────────────────────────────────────────────────────

func TestBool_Strings(t *testing.T) {
	cases := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"Yes", true, true},
		{"YES", true, true},
		{"false", false, true},
		{"No", false, true},
		{"  no  ", false, true},
		{"", false, false},
		{"maybe", false, false},
	}
	for _, c := range cases {
		got, ok := normalize.Bool(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Bool(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestBool_NativeAndNil(t *testing.T) {
	if got, ok := normalize.Bool(true); !got || !ok {
		t.Errorf("Bool(true) = (%v, %v), want (true, true)", got, ok)
	}
	if _, ok := normalize.Bool(nil); ok {
		t.Error("Bool(nil) should not be ok")
	}
}

// ── Number ─────────────────────────────────────────────────────────────────

func TestNumber(t *testing.T) {
	cases := []struct {
		in     interface{}
		want   float64
		wantOK bool
	}{
		{12.5, 12.5, true},
		{42, 42, true},
		{"1200", 1200, true},
		{"$1,200.50", 1200.50, true},
		{"10K", 10000, true},
		{"$2.5k", 2500, true},
		{"1M", 1e6, true},
		{"€300", 300, true},
		{"", 0, false},
		{"abc", 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := normalize.Number(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Number(%v) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

// ── Percent ────────────────────────────────────────────────────────────────

func TestPercent_ThreeRepresentations(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{"55%", 0.55},
		{0.55, 0.55},
		{55, 0.55},
		{"100%", 1.0},
		{1.0, 1.0},
		{"0.75", 0.75},
	}
	for _, c := range cases {
		got, ok := normalize.Percent(c.in)
		if !ok {
			t.Errorf("Percent(%v) unexpectedly not ok", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("Percent(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPercent_NotProvidedIsDistinctFromZero(t *testing.T) {
	if _, ok := normalize.Percent(nil); ok {
		t.Error("Percent(nil) should not be ok")
	}
	if _, ok := normalize.Percent(""); ok {
		t.Error("Percent(\"\") should not be ok")
	}
	got, ok := normalize.Percent(0)
	if !ok || got != 0 {
		t.Errorf("Percent(0) = (%v, %v), want (0, true)", got, ok)
	}
}
