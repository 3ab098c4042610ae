package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termplot/internal/dataset"
	"termplot/internal/export"
	"termplot/internal/tui"
)

var (
	exportPath string
	exportW    int
	exportH    int
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "termplot [file]",
	Short: "Plot 2-D coordinate data in the terminal",
	Long: `termplot renders CSV, GeoJSON, WKT and KML coordinate data as a
braille plot in the terminal, or exports it to a PNG with --export.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, closeLog, err := setupLog()
		if err != nil {
			return err
		}
		defer closeLog()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		if exportPath != "" {
			if path == "" {
				return errors.New("--export requires a data file argument")
			}
			d, err := dataset.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			if err := export.WritePNG(&d, exportPath, exportW, exportH); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			log.WithFields(logrus.Fields{"in": path, "out": exportPath}).Info("exported")
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", exportPath)
			return nil
		}

		m := tui.New(tui.Options{Path: path, Log: log})
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&exportPath, "export", "", "render to a PNG file instead of starting the viewer")
	rootCmd.Flags().IntVar(&exportW, "width", 1280, "exported image width in pixels")
	rootCmd.Flags().IntVar(&exportH, "height", 960, "exported image height in pixels")
	rootCmd.Flags().StringVar(&logPath, "log", "", "append debug logs to a file")
}

// setupLog builds the logger. Output goes to a file when --log is set and
// is discarded otherwise; the terminal belongs to the viewer.
func setupLog() (*logrus.Logger, func(), error) {
	log := logrus.New()
	if logPath == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { f.Close() }, nil
}
