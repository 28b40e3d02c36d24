package main

import (
	"jyotish-service/internal/catalog"
	"jyotish-service/internal/platform/logging"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166")).Bold(true).Padding(0, 1)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8D99AE"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF476F")).Bold(true)
)

type rootOptions struct {
	catalogPath string
	plain       bool
	width       int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "jyotish",
		Short: "Sidereal birth charts with Pancha Pakshi and string-theory flavor",
		Long: `jyotish computes a Vedic (sidereal, Lahiri) birth chart from a birth
date, local time, IANA time zone and coordinates.

Available subcommands:
  chart     - Cast a chart and print its reading
  reference - Print the sign, bird and string-type reference text`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(opts.logLevel, "console")
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog overriding the built-in descriptions")
	root.PersistentFlags().BoolVar(&opts.plain, "plain", false, "print raw Markdown instead of styled terminal output")
	root.PersistentFlags().IntVar(&opts.width, "width", 80, "word-wrap width for styled output")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newChartCmd(opts), newReferenceCmd(opts))
	return root
}

func (o *rootOptions) catalog() (*catalog.Catalog, error) {
	return catalog.Open(o.catalogPath)
}

// render styles md for the terminal unless plain output was requested.
func (o *rootOptions) render(md string) (string, error) {
	if o.plain {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(o.width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
