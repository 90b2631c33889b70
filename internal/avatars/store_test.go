package avatars

import (
	"encoding/base64"
	"testing"
	"time"

	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e,
	0x44, 0xae, 0x42, 0x60, 0x82,
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.now = func() time.Time { return time.UnixMilli(1748772000000) }
	return store
}

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(tinyPNG)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(pngDataURI(), 7)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if stored.Filename != "avatar-7-1748772000000.png" {
		t.Fatalf("unexpected filename %q", stored.Filename)
	}
	if stored.PublicPath != "/api/avatars/avatar-7-1748772000000.png" {
		t.Fatalf("unexpected public path %q", stored.PublicPath)
	}

	avatar, err := store.Load(stored.Filename)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if avatar.ContentType != "image/png" {
		t.Fatalf("unexpected content type %q", avatar.ContentType)
	}
	if len(avatar.Data) != len(tinyPNG) {
		t.Fatalf("data did not round-trip, got %d bytes", len(avatar.Data))
	}
}

func TestSaveRejectsNonImageData(t *testing.T) {
	store := newTestStore(t)

	tests := []string{
		"",
		"not a data uri",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, input := range tests {
		_, err := store.Save(input, 1)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("input %q: expected validation error, got %v", input, err)
		}
	}
}

func TestLoadUnknownFilename(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("avatar-1-123.png")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestLoadRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../secret", "a/b.png", "", ".hidden"} {
		if _, err := store.Load(name); pkgerrors.As(err) == nil {
			t.Fatalf("name %q: expected typed error, got %v", name, err)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.png", "image/png"},
		{"a.jpg", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a.gif", "image/gif"},
		{"a.webp", "image/png"},
		{"a", "image/png"},
	}
	for _, tc := range tests {
		if got := ContentTypeFor(tc.filename); got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.filename, tc.want, got)
		}
	}
}
