package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"videogpt/pipeline"
)

type Progress struct {
	bar     *progressbar.ProgressBar
	current pipeline.Stage
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Starting..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSpinnerType(14),
		),
	}
}

// Update is wired to Pipeline.OnStage.
func (p *Progress) Update(stage pipeline.Stage) {
	p.current = stage
	p.bar.Describe(fmt.Sprintf("[cyan]%s...[reset]", capitalize(stage.String())))
	p.bar.Add(1)
}

func (p *Progress) Clear() {
	p.bar.Clear()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
