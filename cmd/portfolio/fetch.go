package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/renderer"
)

var (
	fetchOutput  string
	fetchTimeout time.Duration
	fetchStrict  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Load a provider's content the way the page does and print what it would display",
	Long: `fetch runs one page-session content load against a provider URL. On
failure the error is logged and the default document is printed, exactly
as the page would show it. Use --strict to exit non-zero in that case.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := "http://localhost:3000/api/content"
		if len(args) == 1 {
			url = args[0]
		}

		logger := log.New("fetch")
		logger.SetOutput(cmd.ErrOrStderr())
		page := renderer.NewPage(renderer.NewHTTPFetcher(url, nil), renderer.WithLogger(logger))

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()
		page.Mount(ctx, nil)
		err := page.Wait(ctx)
		snap := page.Snapshot()
		page.Unmount()
		if err != nil {
			logger.Errorf("content load did not finish: %v", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "state: %s\n", snap.State)
		if err := writeDocument(cmd.OutOrStdout(), fetchOutput, snap.Content); err != nil {
			return err
		}
		if fetchStrict && snap.State != renderer.StateLoaded {
			return fmt.Errorf("content not loaded from %s", url)
		}
		return nil
	},
}

func writeDocument(w io.Writer, format string, doc content.Document) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (want json or yaml)", format)
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "json", "output format: json or yaml")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 10*time.Second, "overall time allowed for the load")
	fetchCmd.Flags().BoolVar(&fetchStrict, "strict", false, "exit non-zero when the default document is shown")
}
