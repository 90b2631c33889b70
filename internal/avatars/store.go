package avatars

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// CacheControl is served with every avatar; filenames embed a timestamp so
// they are immutable once written.
const CacheControl = "public, max-age=31536000"

const dataURIPrefix = "data:image/"

// StoredAvatar describes a persisted upload.
type StoredAvatar struct {
	Filename   string
	PublicPath string
}

// Avatar is a loaded image ready to serve.
type Avatar struct {
	Data        []byte
	ContentType string
}

// Store writes and reads avatar images under one directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore builds a store over the given directory. The directory is created
// on first write.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("avatar dir required")
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Save decodes a base64 image data URI and writes it as
// avatar-<userID>-<unixMillis>.<subtype>.
func (s *Store) Save(dataURI string, userID int64) (*StoredAvatar, error) {
	if !strings.HasPrefix(dataURI, dataURIPrefix) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid image data")
	}

	header, encoded, ok := strings.Cut(dataURI, ",")
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid image data")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid image data")
	}

	subtype := imageSubtype(header)
	if subtype == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid image data")
	}

	filename := fmt.Sprintf("avatar-%d-%d.%s", userID, s.now().UnixMilli(), subtype)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("write avatar: %w", err)
	}

	return &StoredAvatar{
		Filename:   filename,
		PublicPath: "/api/avatars/" + filename,
	}, nil
}

// Load reads an avatar by filename. Unknown names yield NotFound; names that
// try to escape the directory are rejected outright.
func (s *Store) Load(filename string) (*Avatar, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Filename required")
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Avatar not found")
		}
		return nil, fmt.Errorf("read avatar: %w", err)
	}

	return &Avatar{
		Data:        data,
		ContentType: ContentTypeFor(filename),
	}, nil
}

// ContentTypeFor maps a filename extension to its serve content type,
// defaulting to PNG for anything unrecognized.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// imageSubtype extracts the subtype from a "data:image/<subtype>;base64"
// header.
func imageSubtype(header string) string {
	rest := strings.TrimPrefix(header, dataURIPrefix)
	subtype, _, _ := strings.Cut(rest, ";")
	subtype = strings.TrimSpace(subtype)
	if subtype == "" || strings.ContainsAny(subtype, "/\\.") {
		return ""
	}
	return subtype
}
