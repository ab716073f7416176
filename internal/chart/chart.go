// Package chart renders the comparison and percentile bar charts of an
// analysis report.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/godilite/score-report/internal/service"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	// ErrNoData is returned when a report has nothing to draw.
	ErrNoData = errors.New("no chart data")
	// ErrUnsupportedFormat is returned by ParseFormat.
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// Format selects the output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat maps "png" or "svg" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	case "":
		return PNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType is the MIME type of the encoded chart.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == SVG {
		return gochart.SVG
	}
	return gochart.PNG
}

const (
	defaultWidth  = 1200
	defaultHeight = 800
	minBarWidth   = 8
)

var (
	studentColor = drawing.ColorFromHex("4299e1")
	averageColor = drawing.ColorFromHex("9ae6b4")
)

// Renderer draws report charts. The zero value is not usable; call New.
type Renderer struct {
	width  int
	height int
	font   *truetype.Font
}

type Option func(*Renderer)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithFont sets the font used for every label. Subject names outside
// Latin script need a font that covers them.
func WithFont(f *truetype.Font) Option {
	return func(r *Renderer) {
		r.font = f
	}
}

// LoadFont parses a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func New(opts ...Option) *Renderer {
	r := &Renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Comparison draws the student's score next to the class average for each
// subject, in report order. Subjects without a class average get only the
// student bar.
func (r *Renderer) Comparison(w io.Writer, report service.AnalysisReport, format Format) error {
	var bars []gochart.Value
	for _, row := range report.Rows {
		bars = append(bars, gochart.Value{
			Label: row.Subject,
			Value: row.StudentScore,
			Style: barStyle(studentColor),
		})
		if row.ClassAverage != nil {
			bars = append(bars, gochart.Value{
				Label: "avg",
				Value: *row.ClassAverage,
				Style: barStyle(averageColor),
			})
		}
	}
	return r.render(w, "個人成績與班級平均比較", "分數", bars, format)
}

// Percentile draws one bar per subject that has a percentile rank.
func (r *Renderer) Percentile(w io.Writer, report service.AnalysisReport, format Format) error {
	var bars []gochart.Value
	for _, row := range report.Rows {
		if row.PercentileRank == nil {
			continue
		}
		bars = append(bars, gochart.Value{
			Label: row.Subject,
			Value: *row.PercentileRank,
			Style: barStyle(studentColor),
		})
	}
	return r.render(w, "各科目成績百分位數分布", "百分位數", bars, format)
}

func barStyle(c drawing.Color) gochart.Style {
	return gochart.Style{
		FillColor:   c,
		StrokeColor: c,
		StrokeWidth: 1,
	}
}

func (r *Renderer) render(w io.Writer, title, yName string, bars []gochart.Value, format Format) error {
	if len(bars) == 0 {
		return ErrNoData
	}

	barWidth := (r.width - 160) / (len(bars) * 2)
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	ch := gochart.BarChart{
		Title:      title,
		Font:       r.font,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      gochart.Style{FontSize: 10},
		YAxis: gochart.YAxis{
			Name:  yName,
			Range: &gochart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	if err := ch.Render(format.provider(), w); err != nil {
		return fmt.Errorf("render %s chart: %w", format, err)
	}
	return nil
}
