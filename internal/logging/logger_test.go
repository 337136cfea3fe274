package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/folio/internal/config"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	g := NewWithT(t)
	l, err := New("", "debug")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(l.Core().Enabled(0)).To(BeFalse())
}

func TestNew_WritesJSON(t *testing.T) {
	g := NewWithT(t)
	path := filepath.Join(t.TempDir(), "logs", "folio.log")

	l, err := New(path, "bogus")
	g.Expect(err).NotTo(HaveOccurred())
	l.Debug("hidden")
	l.Info("theme toggled")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(HaveOccurred())
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	g.Expect(lines).To(HaveLen(1))

	var entry map[string]any
	g.Expect(json.Unmarshal([]byte(lines[0]), &entry)).To(Succeed())
	g.Expect(entry).To(HaveKeyWithValue("message", "theme toggled"))
	g.Expect(entry).To(HaveKeyWithValue("severity", "INFO"))
}

func TestNew_DefaultConfigLogsToDataDir(t *testing.T) {
	g := NewWithT(t)
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	l, err := New(cfg.LogPath(), cfg.LogLevel)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(l.Core().Enabled(zapcore.InfoLevel)).To(BeTrue())
	l.Info("page started")
	_ = l.Sync()

	g.Expect(filepath.Join(cfg.DataDir, config.DefaultLogFile)).To(BeARegularFile())
}
