// Package profile persists per-user aggregate statistics to a JSON file.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/keydrill/keydrill/internal/model"
)

// Store holds the current user and all known profiles. Every mutation
// is persisted synchronously via an atomic write-then-rename.
type Store struct {
	path string

	CurrentUser string                   `json:"current_user"`
	Users       map[string]model.Profile `json:"users"`
}

// Load reads the profile store from path. A missing or corrupt file
// yields an empty store, which forces the first-run setup flow.
func Load(path string) *Store {
	st := &Store{path: path, Users: map[string]model.Profile{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, st); err != nil {
		st.CurrentUser = ""
		st.Users = map[string]model.Profile{}
		return st
	}
	if st.Users == nil {
		st.Users = map[string]model.Profile{}
	}
	if st.CurrentUser != "" {
		if _, ok := st.Users[st.CurrentUser]; !ok {
			st.CurrentUser = ""
		}
	}
	return st
}

// Save writes the full store to disk via a temp file and rename.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "profiles-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp profiles file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close profiles file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}

// Empty reports whether no users exist yet.
func (s *Store) Empty() bool { return len(s.Users) == 0 }

// Names returns all usernames in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Users))
	for name := range s.Users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create adds a user if the name is new and makes it current.
func (s *Store) Create(name string) error {
	if name == "" {
		return fmt.Errorf("username is empty")
	}
	if _, ok := s.Users[name]; !ok {
		s.Users[name] = model.Profile{}
	}
	s.CurrentUser = name
	return s.Save()
}

// Delete removes a user. Deleting the current user clears the selection.
func (s *Store) Delete(name string) error {
	if _, ok := s.Users[name]; !ok {
		return fmt.Errorf("unknown user %q", name)
	}
	delete(s.Users, name)
	if s.CurrentUser == name {
		s.CurrentUser = ""
	}
	return s.Save()
}

// SetCurrent switches the current user.
func (s *Store) SetCurrent(name string) error {
	if _, ok := s.Users[name]; !ok {
		return fmt.Errorf("unknown user %q", name)
	}
	s.CurrentUser = name
	return s.Save()
}

// Record folds a completed test into the named profile: the test count
// and totals accumulate, the bests only ever increase.
func (s *Store) Record(name string, wpm, accuracy float64) error {
	if name == "" {
		return fmt.Errorf("username is empty")
	}
	p := s.Users[name]
	p.TestsCompleted++
	p.TotalWPM += wpm
	p.TotalAccuracy += accuracy
	if wpm > p.BestWPM {
		p.BestWPM = wpm
	}
	if accuracy > p.BestAccuracy {
		p.BestAccuracy = accuracy
	}
	s.Users[name] = p
	return s.Save()
}

// Leaderboard returns up to n usernames ordered by best WPM descending.
func (s *Store) Leaderboard(n int) []string {
	names := s.Names()
	sort.SliceStable(names, func(i, j int) bool {
		return s.Users[names[i]].BestWPM > s.Users[names[j]].BestWPM
	})
	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names
}
