package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/folio/internal/anim"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/contact"
	"github.com/san-kum/folio/internal/counter"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/logging"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/prefs"
	"github.com/san-kum/folio/internal/typewriter"
	"github.com/san-kum/folio/internal/ui"
	"github.com/san-kum/folio/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	frameRate  int
	seed       int64
	// mailto
	formName    string
	formEmail   string
	formMessage string
	openClient  bool
	// snapshot
	frames     int
	outFile    string
	snapFormat string
	snapWidth  int
	snapRows   int
	// config init
	force bool
	// preview
	previewSteps int
)

// main registers the commands and runs the page when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "folio",
		Short:        "terminal portfolio page",
		SilenceUsage: true,
		RunE:         runPage,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "particle preset")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for the particle field")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	themeCmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "show or change the saved theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE:      runTheme,
	}

	mailtoCmd := &cobra.Command{
		Use:   "mailto",
		Short: "build the contact form mail link",
		RunE:  runMailto,
	}
	mailtoCmd.Flags().StringVar(&formName, "name", "", "sender name")
	mailtoCmd.Flags().StringVar(&formEmail, "email", "", "sender email")
	mailtoCmd.Flags().StringVar(&formMessage, "message", "", "message body")
	mailtoCmd.Flags().BoolVar(&openClient, "open", false, "hand the link to the mail client")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the particle field to SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate before capture")
	snapshotCmd.Flags().StringVar(&outFile, "out", "particles.svg", "output file")
	snapshotCmd.Flags().StringVar(&snapFormat, "format", "vector", "svg style: vector or braille")
	snapshotCmd.Flags().IntVar(&snapWidth, "cols", 100, "field width in terminal columns")
	snapshotCmd.Flags().IntVar(&snapRows, "rows", 20, "field height in terminal rows")

	previewCmd := &cobra.Command{
		Use:       "preview [counters|typewriter]",
		Short:     "plot an animation timeline",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"counters", "typewriter"},
		RunE:      runPreview,
	}
	previewCmd.Flags().IntVar(&previewSteps, "steps", 60, "typewriter steps to plot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list particle presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(themeCmd, mailtoCmd, snapshotCmd, previewCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies, in order, the defaults, the config file, the preset
// and any flags given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Particles = p
	}
	if cmd.Flags().Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedFromClock picks a fresh seed when none was configured.
func seedFromClock(cfg *config.Config) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

func openPrefs(cfg *config.Config) (*prefs.BoltStore, error) {
	st, err := prefs.OpenBolt(cfg.PrefsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return st, nil
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seedFromClock(cfg)
	log, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	log.Info("starting page", zap.String("data_dir", cfg.DataDir), zap.Int64("seed", cfg.Seed))
	return ui.Run(ui.Deps{
		Config: cfg,
		Store:  st,
		Opener: contact.NewBrowserOpener(io.Discard),
		Logger: log,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
	})
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var theme prefs.Theme
	switch {
	case len(args) == 0:
		theme, err = prefs.LoadTheme(st)
	case args[0] == "toggle":
		theme, err = prefs.ToggleTheme(st)
	default:
		theme, err = prefs.ParseTheme(args[0])
		if err == nil {
			err = prefs.SaveTheme(st, theme)
		}
	}
	if err != nil {
		return err
	}
	fmt.Println(theme)
	return nil
}

func runMailto(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	form := contact.Form{Name: formName, Email: formEmail, Message: formMessage}
	uri, err := contact.MailtoURI(cfg.Contact.Recipient, form)
	if err != nil {
		return err
	}
	fmt.Println(uri)
	if openClient {
		if err := contact.NewBrowserOpener(os.Stderr).Open(uri); err != nil {
			return fmt.Errorf("failed to open mail client: %w", err)
		}
		fmt.Println(contact.AckButtonLabel)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seedFromClock(cfg)
	theme := viz.ThemeDark
	if st, err := openPrefs(cfg); err == nil {
		if t, err := prefs.LoadTheme(st); err == nil {
			theme = viz.GetTheme(t)
		}
		st.Close()
	}

	doc, canvas, err := snapshot(cfg, theme, snapFormat)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s snapshot to %s\n", snapFormat, outFile)
	fmt.Println(canvas.String())
	return nil
}

// snapshot simulates the field for the configured number of frames and
// renders it as an SVG document. "vector" keeps the exact circles and links;
// "braille" reproduces the terminal rendering dot by dot.
func snapshot(cfg *config.Config, theme viz.Theme, format string) (string, *viz.Canvas, error) {
	if snapWidth <= 0 || snapRows <= 0 {
		return "", nil, fmt.Errorf("cols and rows must be positive")
	}

	canvas := viz.NewCanvas(snapWidth, snapRows, cfg.Particles.Scale)
	w, h := canvas.Bounds()
	field, err := particles.New(cfg.Particles.Params, w, h, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return "", nil, err
	}
	for i := 0; i < frames; i++ {
		field.Step()
	}
	field.Render(canvas)

	bg, ink := string(theme.Background), string(theme.Particle)
	switch format {
	case "vector":
		svg := export.NewSVG(w, h, bg, ink)
		field.Render(svg)
		return svg.String(), canvas, nil
	case "braille":
		return export.CanvasToSVG(canvas, cfg.Particles.Scale, bg, ink), canvas, nil
	default:
		return "", nil, fmt.Errorf("unknown format: %s (available: vector, braille)", format)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "folio.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	switch args[0] {
	case "counters":
		return previewCounters(cfg)
	case "typewriter":
		return previewTypewriter(cfg)
	default:
		return fmt.Errorf("unknown preview: %s (available: counters, typewriter)", args[0])
	}
}

func previewCounters(cfg *config.Config) error {
	if len(cfg.Counters) == 0 {
		fmt.Println("no counters configured")
		return nil
	}
	a := counter.New(cfg.Counters)
	a.Trigger(1)

	series := make([][]float64, len(cfg.Counters))
	sample := func() {
		for i := range series {
			series[i] = append(series[i], a.Progress(i)*100)
		}
	}
	sample()
	clock := anim.NewManual(time.Time{})
	if err := a.Run(context.Background(), clock, func([]string) { sample() }); err != nil {
		return err
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("counter progress (%%) over %d steps", len(series[0]))),
	)
	fmt.Println(graph)
	for i, s := range a.Specs() {
		fmt.Printf("  %-14s %s\n", s.Label, a.Texts()[i])
	}
	return nil
}

func previewTypewriter(cfg *config.Config) error {
	lengths, elapsed, err := typewriterTimeline(cfg, previewSteps)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(lengths,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("typed length over %d steps (%s)", len(lengths), elapsed)),
	)
	fmt.Println(graph)
	return nil
}

// typewriterTimeline runs the phrase cycle on a manual clock until steps
// texts were shown and returns their lengths and the simulated time taken.
func typewriterTimeline(cfg *config.Config, steps int) ([]float64, time.Duration, error) {
	c, err := typewriter.New(cfg.Phrases, cfg.Typing)
	if err != nil {
		return nil, 0, err
	}
	if steps <= 0 {
		return nil, 0, fmt.Errorf("steps must be positive")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lengths := make([]float64, 0, steps)
	full := make(chan struct{})
	clock := anim.NewManual(time.Time{})
	r := typewriter.NewRunner(c, clock, func(text string) {
		lengths = append(lengths, float64(len([]rune(text))))
		if len(lengths) == steps {
			cancel()
			close(full)
		}
	})
	r.Start(ctx)
	<-full
	r.Stop()

	var elapsed time.Duration
	for _, d := range clock.Delays {
		elapsed += d
	}
	return lengths, elapsed, nil
}
