package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"videogpt/config"
	"videogpt/pipeline"
	"videogpt/saver"
	"videogpt/summary"
	"videogpt/transcript"
)

var (
	version = "dev"

	newClient = summary.NewClient
)

type flags struct {
	output     string
	level      string
	provider   string
	folder     string
	configPath string
	stdout     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "videogpt [VIDEO_URL]",
		Short: "Turn a video's transcript into a Markdown guide",
		Example: `  # Save a guide under gpts/ using the cheaper model
  videogpt "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

  # Use the stronger model and pick the file name
  videogpt https://youtu.be/dQw4w9WgXcQ -l high -o notes.md

  # Print the guide instead of saving it
  videogpt https://youtu.be/dQw4w9WgXcQ --stdout`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file name (default: derived from the guide title)")
	cmd.Flags().StringVarP(&f.level, "level", "l", "", "Model level: high or low (default low)")
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "LLM provider: anthropic or openai (default anthropic)")
	cmd.Flags().StringVar(&f.folder, "folder", "", "Folder guides are saved in (default gpts)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Optional YAML config file")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Print the guide instead of saving it")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, videoURL string, f flags) error {
	logLevel := slog.LevelWarn
	if f.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ResolveKeys(); err != nil {
		return err
	}

	client, err := newClient(cfg.ServiceType(), cfg.Keys.LLM)
	if err != nil {
		return err
	}
	summarizer := summary.NewSummarizer(client, cfg.ServiceType(), cfg.LevelValue())
	source := transcript.NewSupadataClient(cfg.Keys.Supadata, cfg.Supadata.BaseURL, cfg.HTTP.Timeout)

	logger.Debug("starting",
		slog.String("url", videoURL),
		slog.String("provider", cfg.Provider),
		slog.String("model", summarizer.Model()),
		slog.String("folder", cfg.Output.Folder),
	)

	p := pipeline.New(source, summarizer, logger)
	progress := NewProgress(cmd.ErrOrStderr())
	p.OnStage = progress.Update

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if f.stdout {
		document, err := p.Generate(ctx, videoURL)
		progress.Clear()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, document)
		fmt.Fprintln(out, "Completed.")
		return nil
	}

	path, err := p.Run(ctx, videoURL, saver.Options{
		CustomName: f.output,
		SourceURL:  videoURL,
		Folder:     cfg.Output.Folder,
	})
	progress.Clear()
	if path != "" {
		fmt.Fprintf(out, "Saved at: %s\n", path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Completed.")
	return nil
}

func applyFlags(cfg *config.Config, f flags) {
	if f.provider != "" {
		cfg.Provider = f.provider
	}
	if f.level != "" {
		cfg.Level = f.level
	}
	if f.folder != "" {
		cfg.Output.Folder = f.folder
	}
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
