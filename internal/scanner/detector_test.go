package scanner

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// feed types the string with a fixed gap between characters.
func feed(d *Detector, s string, start time.Time, gap time.Duration) (Result, time.Time) {
	at := start
	var last Result
	for _, r := range s {
		last = d.Key(r, at)
		at = at.Add(gap)
	}
	return last, at
}

func TestScannerBurstEmitsCode(t *testing.T) {
	d := NewDetector()

	last, at := feed(d, "4006381333931", t0, 10*time.Millisecond)
	if !last.Suppress {
		t.Fatal("confirmed scan must suppress keystrokes")
	}

	got := d.Enter(at)
	if got.Code != "4006381333931" {
		t.Fatalf("expected emitted code, got %q", got.Code)
	}
	if !got.Suppress {
		t.Fatal("qualifying Enter must be suppressed")
	}
}

func TestHumanTypingNeverEmits(t *testing.T) {
	d := NewDetector()

	last, at := feed(d, "12345", t0, 200*time.Millisecond)
	if last.Suppress {
		t.Fatal("human typing must not be suppressed")
	}
	if got := d.Enter(at); got.Code != "" {
		t.Fatalf("human Enter must not emit, got %q", got.Code)
	}
}

func TestShortBurstDiscardedOnEnter(t *testing.T) {
	d := NewDetector()

	_, at := feed(d, "123", t0, 10*time.Millisecond)
	if got := d.Enter(at); got.Code != "" {
		t.Fatalf("buffer below minimum length must not emit, got %q", got.Code)
	}
}

func TestFirstFastCharDoesNotConfirm(t *testing.T) {
	d := NewDetector()

	r := d.Key('1', t0)
	if r.Suppress {
		t.Fatal("first key can never be suppressed")
	}
	r = d.Key('2', t0.Add(10*time.Millisecond))
	if !r.Suppress {
		t.Fatal("second fast key confirms scanning")
	}
}

func TestIdleGapDiscardsBuffer(t *testing.T) {
	d := NewDetector()

	_, at := feed(d, "400638", t0, 10*time.Millisecond)

	// a long pause, then Enter: stale buffer must not emit
	if got := d.Enter(at.Add(500 * time.Millisecond)); got.Code != "" {
		t.Fatalf("idle buffer must be discarded, got %q", got.Code)
	}
}

func TestSlowKeyRestartsBuffer(t *testing.T) {
	d := NewDetector()

	_, at := feed(d, "40063", t0, 10*time.Millisecond)

	// a slow key breaks the burst and restarts as human typing
	r := d.Key('x', at.Add(120*time.Millisecond))
	if r.Suppress {
		t.Fatal("slow key must not be suppressed")
	}
	if r.Buffer != "x" {
		t.Fatalf("slow key must restart the buffer, got %q", r.Buffer)
	}
}

func TestDetectorReusableAfterEmit(t *testing.T) {
	d := NewDetector()

	_, at := feed(d, "11112222", t0, 5*time.Millisecond)
	if got := d.Enter(at); got.Code != "11112222" {
		t.Fatalf("first scan: got %q", got.Code)
	}

	_, at2 := feed(d, "33334444", at.Add(time.Second), 5*time.Millisecond)
	if got := d.Enter(at2); got.Code != "33334444" {
		t.Fatalf("second scan: got %q", got.Code)
	}
}
