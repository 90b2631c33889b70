// Package scanner classifies a keystroke stream as USB HID scanner input or
// human typing. Scanners type characters far faster than people; two
// successive keys inside the speed window confirm a scan in progress.
package scanner

import "time"

const (
	// ScannerSpeed is the maximum gap between two keys of a scanner burst.
	ScannerSpeed = 50 * time.Millisecond
	// MinBarcodeLength is the minimum buffered length for an Enter to emit.
	MinBarcodeLength = 4
	// ResetAfter discards the buffer when no key arrives within it.
	ResetAfter = 300 * time.Millisecond
)

// Result reports the outcome of one keystroke.
type Result struct {
	// Code is the emitted barcode; set only by a qualifying Enter.
	Code string
	// Suppress tells the caller to withhold the keystroke from whatever
	// consumer currently has focus.
	Suppress bool
	// Buffer is the accumulated candidate after this keystroke.
	Buffer string
}

// Detector is a single-consumer keystroke classifier. It is not safe for
// concurrent use; feed it from one input loop.
type Detector struct {
	buffer   []rune
	lastAt   time.Time
	scanning bool
}

// NewDetector returns an empty detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Key feeds one printable character stamped with its arrival time.
func (d *Detector) Key(r rune, at time.Time) Result {
	d.maybeIdleReset(at)

	fast := !d.lastAt.IsZero() && at.Sub(d.lastAt) <= ScannerSpeed

	if fast {
		if !d.scanning && len(d.buffer) >= 1 {
			// second fast char confirms scanner origin
			d.scanning = true
		}
		d.buffer = append(d.buffer, r)
		d.lastAt = at
		return Result{Suppress: d.scanning, Buffer: string(d.buffer)}
	}

	// slow key: restart as human typing
	d.buffer = d.buffer[:0]
	d.buffer = append(d.buffer, r)
	d.lastAt = at
	d.scanning = false
	return Result{Buffer: string(d.buffer)}
}

// Enter feeds the terminator. A confirmed scan of qualifying length emits
// its code and resets; anything else just discards the buffer.
func (d *Detector) Enter(at time.Time) Result {
	d.maybeIdleReset(at)

	if d.scanning && len(d.buffer) >= MinBarcodeLength {
		code := string(d.buffer)
		d.reset()
		return Result{Code: code, Suppress: true}
	}

	d.buffer = d.buffer[:0]
	d.scanning = false
	return Result{}
}

func (d *Detector) maybeIdleReset(at time.Time) {
	if !d.lastAt.IsZero() && at.Sub(d.lastAt) > ResetAfter {
		d.reset()
	}
}

func (d *Detector) reset() {
	d.buffer = d.buffer[:0]
	d.lastAt = time.Time{}
	d.scanning = false
}
