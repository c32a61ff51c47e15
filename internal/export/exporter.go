// Package export turns backend records into downloadable documents: PDF
// invoices and proofs, spreadsheet reports and CSV ledgers.
package export

import (
	"errors"
	"fmt"

	"backoffice/internal/events"
	"backoffice/internal/logging"
	"backoffice/internal/metrics"

	"github.com/rs/zerolog"
)

const ContentTypePDF = "application/pdf"

// ErrBrowserOnly is returned when there is no download target.
var ErrBrowserOnly = errors.New("PDF export is only available in browser")

// Downloader is where a finished file is delivered, typically the browser
// response.
type Downloader interface {
	Download(fileName, contentType string, data []byte) error
}

type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type Exporter struct {
	renderer  Renderer
	publisher *events.EventBus
	logger    zerolog.Logger
}

func NewExporter(renderer Renderer, publisher *events.EventBus, logger *zerolog.Logger) *Exporter {
	log := logging.Component(logger, "export")
	return &Exporter{renderer: renderer, publisher: publisher, logger: log}
}

// Download renders doc and hands it to dst. Nothing is rendered when dst is
// nil.
func (e *Exporter) Download(dst Downloader, doc Document) error {
	if dst == nil {
		return ErrBrowserOnly
	}

	data, err := e.renderer.Render(doc)
	metrics.IncExport(doc.Kind, err)
	if err != nil {
		e.logger.Error().Err(err).Str("kind", doc.Kind).Msg("render failed")
		return fmt.Errorf("render %s: %w", doc.Kind, err)
	}

	if err := dst.Download(doc.FileName, ContentTypePDF, data); err != nil {
		return err
	}

	e.logger.Info().Str("kind", doc.Kind).Str("file", doc.FileName).Int("bytes", len(data)).Msg("document exported")
	_ = e.publisher.PublishJSON(events.EventExportDone, events.ExportEventPayload{Kind: doc.Kind, FileName: doc.FileName})
	return nil
}
