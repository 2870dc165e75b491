package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Zamiel01/vitaebot/internal/model"
	"github.com/Zamiel01/vitaebot/internal/usecase"
	infra "github.com/Zamiel01/vitaebot/pkg/infrastructure"
)

// cvexport renders a CV document file straight to a PDF without the
// server, useful for checking templates and pagination locally.
func main() {
	in := flag.String("in", "cv.json", "path to a document file ({cvData, selectedTemplate} or bare cvData)")
	out := flag.String("out", usecase.ExportFilename, "output PDF path")
	tplDir := flag.String("templates", "templates", "template directory")
	tplID := flag.String("template", "", "template id override")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}

	var rec model.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	var probe map[string]json.RawMessage
	if json.Unmarshal(b, &probe) == nil {
		if _, ok := probe["cvData"]; !ok {
			// bare document without the record wrapper
			rec = model.Record{CVData: model.DecodeDocument(b)}
		}
	}
	if *tplID != "" {
		rec.SelectedTemplate = *tplID
	}

	exporter := usecase.NewExporter(usecase.NewTemplateRenderer(*tplDir), infra.NewChromedpRasterizer())
	pdf, err := exporter.ExportPDF(context.Background(), rec.CVData, rec.SelectedTemplate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
