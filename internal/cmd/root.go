package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/angrycuban13/TPDbCollectionMaker/internal/config"
	"github.com/angrycuban13/TPDbCollectionMaker/internal/content"
	"github.com/angrycuban13/TPDbCollectionMaker/internal/scrape"
)

var (
	alwaysQuote bool
	outputPath  string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tpdb-collection-maker HTML_FILE",
	Short: "Generate Kometa poster entries from a saved ThePosterDB page",
	Long: `tpdb-collection-maker reads a saved ThePosterDB collection page and emits
ready-to-paste Kometa poster entries, grouped by collection, movie, and show.

Season posters are nested under their show, and entries whose titles collide
are disambiguated by year automatically. Output goes to stdout so it can be
piped straight into a config file.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRootCommand,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&alwaysQuote, "always-quote", false, `Put all titles in quotes ("")`)
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write entries to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	htmlPath := args[0]
	file, err := os.Open(htmlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %q does not exist", htmlPath)
		}
		return fmt.Errorf("failed to open %s: %w", htmlPath, err)
	}
	defer file.Close()

	logger.Debug().Str("file", htmlPath).Msg("Scraping saved page")
	posters, err := scrape.Posters(file, scrape.Options{
		PosterSelector: cfg.PosterSelector,
		TitleSelector:  cfg.TitleSelector,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to scrape %s: %w", htmlPath, err)
	}

	list := content.NewList()
	for _, p := range posters {
		c, err := content.New(p.ID, content.Type(p.Type), p.Title, cfg.AlwaysQuote || alwaysQuote)
		if err != nil {
			return err
		}
		list.Add(c)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, list.Render()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSummary(cmd.ErrOrStderr(), list)
	return nil
}

// newLogger builds the stderr console logger. The generated entries go to
// stdout, so logging must stay off that stream.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
