package pipeline

import (
	"context"
	"log/slog"
	"time"

	"videogpt/saver"
	"videogpt/transcript"
)

type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Pipeline turns a video URL into a saved guide. It keeps no state between
// runs; every step runs once and the first failure ends the run.
type Pipeline struct {
	source     transcript.Source
	summarizer Summarizer
	logger     *slog.Logger

	// OnStage, when set, is called on every stage transition.
	OnStage func(Stage)
}

func New(source transcript.Source, summarizer Summarizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:     source,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Generate fetches the transcript and summarizes it without touching disk.
func (p *Pipeline) Generate(ctx context.Context, videoURL string) (string, error) {
	p.enter(Fetching)
	if id, err := transcript.VideoID(videoURL); err == nil {
		p.logger.Debug("fetching transcript", slog.String("video_id", id))
	}
	text, err := p.source.Fetch(ctx, videoURL)
	if err != nil {
		return "", p.fail(Fetching, err)
	}
	p.logger.Debug("transcript fetched", slog.Int("chars", len(text)))

	p.enter(Summarizing)
	document, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		return "", p.fail(Summarizing, err)
	}
	p.logger.Debug("summary generated", slog.Int("chars", len(document)))

	return document, nil
}

// Run generates the guide and writes it according to opts, returning the
// path written. On a write failure the attempted path is still returned.
func (p *Pipeline) Run(ctx context.Context, videoURL string, opts saver.Options) (string, error) {
	startTime := time.Now()

	document, err := p.Generate(ctx, videoURL)
	if err != nil {
		return "", err
	}

	p.enter(Composing)
	content := saver.Compose(document, opts.SourceURL)

	p.enter(Writing)
	path, err := saver.Write(document, content, opts)
	if err != nil {
		return path, p.fail(Writing, err)
	}

	p.enter(Done)
	p.logger.Info("guide saved",
		slog.String("path", path),
		slog.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)),
	)
	return path, nil
}

func (p *Pipeline) enter(stage Stage) {
	if p.OnStage != nil {
		p.OnStage(stage)
	}
}

func (p *Pipeline) fail(stage Stage, err error) error {
	p.enter(Failed)
	p.logger.Debug("run failed", slog.String("stage", stage.String()), slog.Any("error", err))
	return &StageError{Stage: stage, Err: err}
}
