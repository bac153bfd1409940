package preference

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/BruksfildServices01/scheduler-web/internal/logging"
)

// DarkModeKey is the key the preference is stored under.
const DarkModeKey = "darkMode"

// Client hint sent by browsers that were asked for the color scheme.
const ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// Settings is the dark-mode preference of one visitor. It is read once with
// Load and written back on every Toggle.
type Settings struct {
	store  Store
	logger logging.Logger

	// writeMu orders toggles so the store ends with the latest value.
	writeMu sync.Mutex

	mu     sync.RWMutex
	loaded bool
	dark   bool
}

func NewSettings(store Store, logger logging.Logger) *Settings {
	return &Settings{store: store, logger: logger}
}

// Load initializes the preference from the stored value, or from the OS
// signal when nothing valid is stored. Later calls are no-ops.
func (s *Settings) Load(ctx context.Context, systemDark bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.dark
	}

	s.dark = systemDark
	raw, ok, err := s.store.Get(ctx, DarkModeKey)
	switch {
	case err != nil:
		s.logger.Warnf("preference: read %s: %v", DarkModeKey, err)
	case ok:
		var v bool
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			s.logger.Warnf("preference: ignoring stored %s=%q", DarkModeKey, raw)
		} else {
			s.dark = v
		}
	}

	s.loaded = true
	return s.dark
}

func (s *Settings) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Toggle flips the preference and persists it. The in-memory value changes
// even when the write fails.
func (s *Settings) Toggle(ctx context.Context) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.dark = !s.dark
	s.loaded = true
	dark := s.dark
	s.mu.Unlock()

	b, _ := json.Marshal(dark)
	if err := s.store.Set(ctx, DarkModeKey, string(b)); err != nil {
		s.logger.Errorf("preference: write %s: %v", DarkModeKey, err)
		return dark, err
	}
	return dark, nil
}

// SystemPrefersDark reads the OS-level color scheme hint of a request.
func SystemPrefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(ColorSchemeHeader)), `"`)
	return strings.EqualFold(v, "dark")
}
