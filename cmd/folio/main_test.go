package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/viz"
)

func resetFlags(t *testing.T) {
	t.Helper()
	dataDir = t.TempDir()
	configFile, preset = "", ""
	force = false
	frames, snapWidth, snapRows = 5, 40, 10
}

func TestSnapshotFormats(t *testing.T) {
	g := NewWithT(t)
	resetFlags(t)
	cfg := config.DefaultConfig()

	vector, canvas, err := snapshot(cfg, viz.ThemeDark, "vector")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(strings.Count(vector, "<circle")).To(Equal(cfg.Particles.LowCount))
	g.Expect(canvas.Cells()).To(BeNumerically(">", 0))

	braille, _, err := snapshot(cfg, viz.ThemeDark, "braille")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(braille).To(ContainSubstring(`width="400" height="200"`))
	g.Expect(strings.Count(braille, "<circle")).To(BeNumerically(">", 0))

	_, _, err = snapshot(cfg, viz.ThemeDark, "png")
	g.Expect(err).To(MatchError(ContainSubstring("unknown format")))

	snapRows = 0
	_, _, err = snapshot(cfg, viz.ThemeDark, "vector")
	g.Expect(err).To(HaveOccurred())
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	g := NewWithT(t)
	resetFlags(t)
	preset = "subtle"
	path := filepath.Join(t.TempDir(), "folio.yaml")

	g.Expect(runConfigInit(&cobra.Command{}, []string{path})).To(Succeed())
	loaded, err := config.Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	want, _ := config.GetPreset("subtle")
	g.Expect(loaded.Particles).To(Equal(want))
	g.Expect(loaded.DataDir).To(Equal(dataDir))
	g.Expect(loaded.Seed).To(BeZero())

	g.Expect(runConfigInit(&cobra.Command{}, []string{path})).To(MatchError(ContainSubstring("already exists")))
	force = true
	preset = ""
	g.Expect(runConfigInit(&cobra.Command{}, []string{path})).To(Succeed())
	loaded, err = config.Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded.Particles).To(Equal(config.DefaultConfig().Particles))
}

func TestConfigInitRejectsUnknownPreset(t *testing.T) {
	g := NewWithT(t)
	resetFlags(t)
	preset = "nope"
	path := filepath.Join(t.TempDir(), "folio.yaml")

	g.Expect(runConfigInit(&cobra.Command{}, []string{path})).To(MatchError(ContainSubstring("unknown preset")))
	_, err := os.Stat(path)
	g.Expect(os.IsNotExist(err)).To(BeTrue())
}

func TestTypewriterTimeline(t *testing.T) {
	g := NewWithT(t)
	cfg := config.DefaultConfig()
	cfg.Phrases = []string{"Go"}

	lengths, elapsed, err := typewriterTimeline(cfg, 5)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lengths).To(Equal([]float64{1, 2, 1, 0, 1}))
	g.Expect(elapsed).To(Equal(100*time.Millisecond + 2000*time.Millisecond + 50*time.Millisecond + 500*time.Millisecond))

	_, _, err = typewriterTimeline(cfg, 0)
	g.Expect(err).To(HaveOccurred())
}
