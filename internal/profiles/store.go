package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Profile is the per-email presentation data kept outside the accounts table.
type Profile struct {
	Avatar    *string `json:"avatar"`
	Bio       *string `json:"bio"`
	Username  *string `json:"username"`
	UpdatedAt string  `json:"updatedAt"`
}

// Store is a JSON flat file keyed by email. Writes rewrite the whole file
// under a mutex; the dataset is a handful of back-office accounts.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStore builds a store over the given file path. The file is created on
// first write, not here.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("profile store path required")
	}
	return &Store{path: path, now: time.Now}, nil
}

// Get returns the profile for the email, or nil when none is stored.
func (s *Store) Get(email string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}
	profile, ok := all[email]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// Save replaces the profile for the email and stamps it with the current
// time.
func (s *Store) Save(email string, avatar, bio, username *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	all[email] = Profile{
		Avatar:    avatar,
		Bio:       bio,
		Username:  username,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	}
	return s.write(all)
}

func (s *Store) load() (map[string]Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Profile{}, nil
		}
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	var all map[string]Profile
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}
	if all == nil {
		all = map[string]Profile{}
	}
	return all, nil
}

func (s *Store) write(all map[string]Profile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profiles dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write profiles file: %w", err)
	}
	return nil
}
