package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tvctl/internal/logger"
)

// Tokens used in the state file.
const (
	tokenDesktop  = "desktop"
	tokenTV       = "tv"
	tokenUnscaled = "unscaled"
	tokenScaled   = "scaled"
)

// ErrMalformed is returned when the state file does not hold exactly two recognized lines.
var ErrMalformed = errors.New("malformed state file")

// State holds the persisted display mode.
// - TV: true in TV mode, false in desktop mode.
// - Scaled: whether the TV output uses the reduced scale. Stored even in desktop mode.
type State struct {
	TV     bool
	Scaled bool
}

// Default is the state written on first run.
func Default() State {
	return State{TV: false, Scaled: true}
}

// Mode returns "tv" or "desktop".
func (s State) Mode() string {
	if s.TV {
		return tokenTV
	}
	return tokenDesktop
}

// Scaling returns "scaled" or "unscaled".
func (s State) Scaling() string {
	if s.Scaled {
		return tokenScaled
	}
	return tokenUnscaled
}

func (s State) String() string {
	return s.Mode() + "/" + s.Scaling()
}

// Encode serializes the state as two newline-separated tokens, without a trailing newline.
func (s State) Encode() []byte {
	return []byte(s.Mode() + "\n" + s.Scaling())
}

// Parse decodes the two-line state format. Anything else is rejected with ErrMalformed.
func Parse(data []byte) (State, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) != 2 {
		return State{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformed, len(lines))
	}

	var st State
	switch lines[0] {
	case tokenDesktop:
		st.TV = false
	case tokenTV:
		st.TV = true
	default:
		return State{}, fmt.Errorf("%w: unknown mode %q", ErrMalformed, lines[0])
	}

	switch lines[1] {
	case tokenUnscaled:
		st.Scaled = false
	case tokenScaled:
		st.Scaled = true
	default:
		return State{}, fmt.Errorf("%w: unknown scaling %q", ErrMalformed, lines[1])
	}
	return st, nil
}

// Store reads and writes the state file at Path.
type Store struct {
	Path string
}

// NewStore returns a Store for the given file.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the state file. A missing file is initialized with Default() first.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("[DEBUG] State file %s does not exist, initializing\n", s.Path)
			if err := s.Init(); err != nil {
				return State{}, err
			}
			return Default(), nil
		}
		return State{}, fmt.Errorf("failed to read state file %s: %w", s.Path, err)
	}

	st, err := Parse(data)
	if err != nil {
		return State{}, fmt.Errorf("%s: %w", s.Path, err)
	}
	logger.Debug("[DEBUG] Loaded state %s from %s\n", st, s.Path)
	return st, nil
}

// Save overwrites the state file atomically (temp file + rename in the same directory).
func (s *Store) Save(st State) error {
	logger.Debug("[DEBUG] Writing state %s to %s\n", st, s.Path)

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(st.Encode()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write state file %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close state file %s: %w", s.Path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod state file %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file %s: %w", s.Path, err)
	}
	return nil
}

// Init writes the default state unconditionally.
func (s *Store) Init() error {
	return s.Save(Default())
}
