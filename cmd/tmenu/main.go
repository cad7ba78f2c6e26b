package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tmenu/internal/config"
	"tmenu/internal/logger"
	"tmenu/internal/reader"
	"tmenu/internal/ui"
)

var version = "0.1.0"

// exitCode carries the session outcome out of cobra: 0 submitted,
// 1 cancelled, 2 usage or I/O error.
var exitCode int

var rootCmd = &cobra.Command{
	Use:     "tmenu",
	Short:   "Interactive line picker for pipes",
	Version: version,
	Long: `tmenu reads separator-delimited items from standard input, lets you
narrow and pick one (or several) interactively, and prints the selection
to standard output.

Examples:
  ls | tmenu -l "Open"
  find . -name '*.go' | tmenu -s
  printf 'red\ngreen\nblue' | tmenu -o ", "`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPick,
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.Flags()
	f.StringP("geometry", "g", "", "window size as WxH in terminal cells")
	f.StringP("input-separator", "i", `\n`, "item separator for standard input")
	f.StringP("label", "l", "", "label shown before the input field")
	f.BoolP("minimal", "m", false, "start with the list hidden")
	f.StringP("output-separator", "o", "", "enable multi-select, joining picks with STRING")
	f.BoolP("sort", "s", false, "sort items naturally instead of by arrival")
	f.StringP("title", "t", "", "terminal window title")
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	logger.SetLevel(config.GetLogLevel())

	geometry, _ := cmd.Flags().GetString("geometry")
	width, height, err := parseGeometry(geometry)
	if err != nil {
		return err
	}

	inputSep, _ := cmd.Flags().GetString("input-separator")
	outputSep, _ := cmd.Flags().GetString("output-separator")
	label, _ := cmd.Flags().GetString("label")
	title, _ := cmd.Flags().GetString("title")
	minimal, _ := cmd.Flags().GetBool("minimal")
	sorted, _ := cmd.Flags().GetBool("sort")

	opts := ui.Options{
		InputSep:      reader.Unescape(inputSep),
		OutputSep:     reader.Unescape(outputSep),
		Label:         label,
		Title:         title,
		Minimal:       minimal,
		Sort:          sorted,
		Width:         width,
		Height:        height,
		Icons:         config.GetIcons(),
		RefilterDelay: time.Duration(config.GetRefilterDelayMs()) * time.Millisecond,
		PollInterval:  time.Duration(config.GetPollIntervalMs()) * time.Millisecond,
		ReadBatch:     config.GetReadBatch(),
		BufferSize:    config.GetBufferSize(),
	}

	m, err := ui.Run(opts, os.Stdin)
	if err != nil {
		return err
	}

	switch m.Status() {
	case ui.StatusSubmitted:
		// The selection is the whole payload: no trailing newline.
		fmt.Print(m.Result())
		exitCode = 0
	case ui.StatusFatal:
		log.New(os.Stderr).Error("input stream failed", "err", m.FatalErr())
		exitCode = 2
	default:
		exitCode = 1
	}
	return nil
}

// parseGeometry parses -g values of the form WxH, e.g. 80x24. Empty means
// size to the terminal.
func parseGeometry(s string) (width, height int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	n, serr := fmt.Sscanf(s, "%dx%d", &width, &height)
	if serr != nil || n != 2 || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid geometry %q, expected WxH", s)
	}
	return width, height, nil
}

func main() {
	// Help and errors go to stderr: stdout is reserved for the selection.
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}
