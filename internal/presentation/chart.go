package presentation

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"loan-predictor/internal/config"
	"loan-predictor/internal/domain/decision"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultChartWidth  = 640
	defaultChartHeight = 400
	gridLines          = 5
)

type bar struct {
	Label string
	Value float64
}

// ChartRenderer draws the financial overview bar chart as PNG. Parsed fonts
// are shared; faces are created per render because they are not safe for
// concurrent use.
type ChartRenderer struct {
	width   int
	height  int
	regular *truetype.Font
	bold    *truetype.Font
	logger  *slog.Logger
}

func NewChartRenderer(cfg config.ChartConfig, logger *slog.Logger) (*ChartRenderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	r := &ChartRenderer{
		width:   cfg.Width,
		height:  cfg.Height,
		regular: regular,
		bold:    bold,
		logger:  logger.With("component", "ChartRenderer"),
	}
	if r.width <= 0 {
		r.width = defaultChartWidth
	}
	if r.height <= 0 {
		r.height = defaultChartHeight
	}
	return r, nil
}

// Render draws Income, Loan Amount and Total Assets using raw amounts.
func (r *ChartRenderer) Render(f decision.FinancialOverview) ([]byte, error) {
	start := time.Now()
	defer func() {
		r.logger.Debug("Financial overview chart rendered", "duration_ms", time.Since(start).Milliseconds())
	}()

	income, _ := f.Income.Float64()
	loan, _ := f.LoanAmount.Float64()
	assets, _ := f.TotalAssets.Float64()
	bars := []bar{
		{Label: "Income", Value: income},
		{Label: "Loan Amount", Value: loan},
		{Label: "Total Assets", Value: assets},
	}

	w, h := float64(r.width), float64(r.height)
	left, right, top, bottom := 80.0, 20.0, 40.0, 50.0
	plotW, plotH := w-left-right, h-top-bottom

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	titleFace := r.face(r.bold, 14)
	labelFace := r.face(r.regular, 11)

	dc.SetFontFace(titleFace)
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.DrawStringAnchored("Financial Overview", w/2, top/2, 0.5, 0.5)

	maxValue := 0.0
	for _, b := range bars {
		maxValue = max(maxValue, b.Value)
	}
	ceiling := niceCeiling(maxValue)

	// Gridlines and y tick labels.
	dc.SetFontFace(labelFace)
	dc.SetLineWidth(1)
	for i := 0; i <= gridLines; i++ {
		value := ceiling * float64(i) / gridLines
		y := top + plotH - plotH*float64(i)/gridLines
		dc.SetRGB(0.88, 0.88, 0.88)
		dc.DrawLine(left, y, left+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.3, 0.3, 0.3)
		dc.DrawStringAnchored(FormatShortNotation(value), left-8, y, 1, 0.35)
	}

	// Axis title, rotated.
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 18, top+plotH/2)
	dc.DrawStringAnchored("Amount (INR)", 18, top+plotH/2, 0.5, 0.5)
	dc.Pop()

	slot := plotW / float64(len(bars))
	barW := slot * 0.6
	for i, b := range bars {
		x := left + slot*float64(i) + (slot-barW)/2
		barH := plotH * b.Value / ceiling
		y := top + plotH - barH

		dc.SetHexColor("#1f77b4")
		dc.DrawRectangle(x, y, barW, barH)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(FormatShortNotation(b.Value), x+barW/2, y-6, 0.5, 0)
		dc.DrawStringAnchored(b.Label, x+barW/2, top+plotH+18, 0.5, 0.5)
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawLine(left, top+plotH, left+plotW, top+plotH)
	dc.DrawLine(left, top, left, top+plotH)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDataURI returns the chart as an inline data: URI for the result page.
func (r *ChartRenderer) RenderDataURI(f decision.FinancialOverview) (string, error) {
	png, err := r.Render(f)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (r *ChartRenderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
