// Package prefs persists the reader's display preferences.
package prefs

import (
	"errors"
	"fmt"
	"sync"
)

// ThemeKey is the single slot the theme preference lives under.
const ThemeKey = "theme"

var ErrInvalidTheme = errors.New("prefs: theme must be \"light\" or \"dark\"")

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	DefaultTheme = Dark
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Store is a durable string key/value store.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// LoadTheme reads the persisted theme. A missing or unrecognised value
// yields DefaultTheme; only storage failures are returned as errors.
func LoadTheme(s Store) (Theme, error) {
	v, ok, err := s.Get(ThemeKey)
	if err != nil {
		return DefaultTheme, fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return DefaultTheme, nil
	}
	t, err := ParseTheme(v)
	if err != nil {
		return DefaultTheme, nil
	}
	return t, nil
}

func SaveTheme(s Store, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.Set(ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the persisted theme and returns the new value.
func ToggleTheme(s Store) (Theme, error) {
	cur, err := LoadTheme(s)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	return next, SaveTheme(s, next)
}

// MemoryStore keeps values in memory for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error { return nil }
