// Command timecluster labels a time series by brushing its embedding.
//
// Usage:
//
//	timecluster [flags]
//
// Flags:
//
//	--data     JSON point file with time_series and reduced_data (default: demo signal)
//	--config   YAML file with palette and style settings
//	--log      Write a debug log to this file
//	--points   Number of samples in the demo signal (default: 1000)
//	--window   Sliding window size of the demo embedding (default: 3)
//
// Flag defaults can also come from TIMECLUSTER_DATA, TIMECLUSTER_CONFIG
// and TIMECLUSTER_LOG, read from the environment or a .env file.
//
// When the window is closed the label mask is printed to stdout as a
// JSON array.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/Mr-Dark-debug/timecluster/internal/config"
	"github.com/Mr-Dark-debug/timecluster/internal/dataset"
	"github.com/Mr-Dark-debug/timecluster/internal/tui"
	"github.com/Mr-Dark-debug/timecluster/pkg/jsonutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: reading .env: %v", err)
	}

	dataPath := flag.String("data", os.Getenv("TIMECLUSTER_DATA"), "JSON point file (time_series, reduced_data)")
	cfgPath := flag.String("config", os.Getenv("TIMECLUSTER_CONFIG"), "YAML display settings")
	logPath := flag.String("log", os.Getenv("TIMECLUSTER_LOG"), "Debug log file")
	demoPoints := flag.Int("points", 1000, "Samples in the demo signal")
	demoWindow := flag.Int("window", 3, "Window size of the demo embedding")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	fig := cfg.FigSizePair()
	figOpt := dataset.WithFigSize(fig[0], fig[1])

	var (
		points *dataset.PointSet
		err    error
	)
	if *dataPath != "" {
		points, err = dataset.Load(*dataPath, figOpt)
	} else {
		points, err = dataset.Demo(*demoPoints, *demoWindow, figOpt)
	}
	if err != nil {
		if errors.Is(err, dataset.ErrShapeMismatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Fatalf("Failed to load points: %v", err)
	}

	// The terminal belongs to the TUI from here on.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "timecluster")
		if err != nil {
			log.Fatalf("Failed to open log file %s: %v", *logPath, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model, err := tui.NewModel(points, cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	log.Printf("session started with %d points", points.Len())

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(tui.Model); ok {
		fmt.Println(jsonutil.MustMarshal(m.LabelMask()))
	}
}
