package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{"", "", true},
		{"Dark", "", true},
		{"solarized", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) err = %v", tt.in, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("ParseTheme(%q) err = %v, want ErrInvalidTheme", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadTheme_DefaultsToDark(t *testing.T) {
	g := NewWithT(t)
	s := NewMemoryStore()

	theme, err := LoadTheme(s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(theme).To(Equal(Dark))

	g.Expect(s.Set(ThemeKey, "neon")).To(Succeed())
	theme, err = LoadTheme(s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(theme).To(Equal(Dark))
}

func TestToggleTheme(t *testing.T) {
	g := NewWithT(t)
	s := NewMemoryStore()

	next, err := ToggleTheme(s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(next).To(Equal(Light))

	v, ok, _ := s.Get(ThemeKey)
	g.Expect(ok).To(BeTrue())
	g.Expect(v).To(Equal("light"))

	next, err = ToggleTheme(s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(next).To(Equal(Dark))
}

func TestSaveTheme_RejectsUnknown(t *testing.T) {
	s := NewMemoryStore()
	if err := SaveTheme(s, Theme("sepia")); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("got %v, want ErrInvalidTheme", err)
	}
	if _, ok, _ := s.Get(ThemeKey); ok {
		t.Error("invalid theme must not be written")
	}
}

func TestBoltStore_PersistsAcrossOpen(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := OpenBolt(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(SaveTheme(s, Light)).To(Succeed())
	g.Expect(s.Close()).To(Succeed())

	s, err = OpenBolt(path)
	g.Expect(err).NotTo(HaveOccurred())
	defer s.Close()

	theme, err := LoadTheme(s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(theme).To(Equal(Light))

	_, ok, err := s.Get("missing")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
}
