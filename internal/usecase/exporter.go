package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"
	"github.com/phuslu/log"

	"github.com/Zamiel01/vitaebot/internal/model"
)

// ExportFilename is the fixed name the generated file is downloaded as.
const ExportFilename = "cv.pdf"

// Rasterizer captures a rendered HTML page as a single tall PNG image.
type Rasterizer interface {
	RenderHTMLToPNG(ctx context.Context, html string) ([]byte, error)
}

// Exporter turns a document plus template selection into a multi-page PDF:
// render to HTML, rasterize once, slice the raster into A4 pages. Any
// failure along the way is terminal for the whole export; there is no
// partial output or retry.
type Exporter struct {
	renderer *TemplateRenderer
	raster   Rasterizer
}

func NewExporter(renderer *TemplateRenderer, raster Rasterizer) *Exporter {
	return &Exporter{renderer: renderer, raster: raster}
}

func (e *Exporter) ExportPDF(ctx context.Context, doc model.Document, templateID string) ([]byte, error) {
	html, err := e.renderer.RenderHTML(doc, templateID)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	raster, err := e.raster.RenderHTMLToPNG(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("rasterize preview: %w", err)
	}
	out, err := AssemblePDF(raster)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("raster_bytes", len(raster)).Int("pdf_bytes", len(out)).Msg("export assembled")
	return out, nil
}

// AssemblePDF slices a single tall PNG raster into fixed-size A4 pages.
// Every page draws the same full image at the offset PagePositions
// computed for it; the page viewport shows only its own slice.
func AssemblePDF(raster []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	positions, err := PagePositions(float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		return nil, err
	}
	imgHeight := ScaledHeight(float64(cfg.Width), float64(cfg.Height))

	pdf := fpdf.New("P", "mm", "A4", "")
	// The raster is taller than one page; auto page breaks would fight the
	// explicit slicing.
	pdf.SetAutoPageBreak(false, 0)
	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	pdf.RegisterImageOptionsReader("cv", opts, bytes.NewReader(raster))
	for _, pos := range positions {
		pdf.AddPage()
		pdf.ImageOptions("cv", 0, pos, PageWidth, imgHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
