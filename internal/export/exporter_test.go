package export

import (
	"errors"
	"os"
	"testing"

	"backoffice/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	data []byte
	err  error
	docs []Document
}

func (s *stubRenderer) Render(doc Document) ([]byte, error) {
	s.docs = append(s.docs, doc)
	return s.data, s.err
}

type memDownloader struct {
	name, contentType string
	data              []byte
}

func (m *memDownloader) Download(fileName, contentType string, data []byte) error {
	m.name, m.contentType, m.data = fileName, contentType, data
	return nil
}

func TestDownloadWithoutTarget(t *testing.T) {
	renderer := &stubRenderer{data: []byte("%PDF")}
	exporter := NewExporter(renderer, nil, nil)

	err := exporter.Download(nil, Document{Kind: "order_invoice"})
	assert.ErrorIs(t, err, ErrBrowserOnly)
	assert.Empty(t, renderer.docs)
}

func TestDownloadDelivers(t *testing.T) {
	bus := events.NewEventBus()
	var published []string
	bus.Subscribe(events.EventExportDone, func(ev *events.Event) error {
		published = append(published, string(ev.Payload))
		return nil
	})

	renderer := &stubRenderer{data: []byte("%PDF")}
	exporter := NewExporter(renderer, bus, nil)
	dst := &memDownloader{}

	err := exporter.Download(dst, Document{Kind: "order_invoice", FileName: "factura_orden_1.pdf"})
	require.NoError(t, err)

	assert.Equal(t, "factura_orden_1.pdf", dst.name)
	assert.Equal(t, ContentTypePDF, dst.contentType)
	assert.Equal(t, []byte("%PDF"), dst.data)

	require.Len(t, published, 1)
	assert.JSONEq(t, `{"kind":"order_invoice","file_name":"factura_orden_1.pdf"}`, published[0])
}

func TestDownloadRenderError(t *testing.T) {
	exporter := NewExporter(&stubRenderer{err: errors.New("boom")}, nil, nil)
	dst := &memDownloader{}

	err := exporter.Download(dst, Document{Kind: "reservation_proof"})
	require.Error(t, err)
	assert.Nil(t, dst.data)
}

func TestPDFRendererRequiresFont(t *testing.T) {
	_, err := NewPDFRenderer("").Render(Document{})
	assert.Error(t, err)
}

func TestPDFRendererWritesDocument(t *testing.T) {
	font := os.Getenv("BACKOFFICE_PDF_FONT")
	if font == "" {
		t.Skip("BACKOFFICE_PDF_FONT not set")
	}
	if _, err := os.Stat(font); err != nil {
		t.Skipf("font %s not available", font)
	}
	fixedNow(t)

	data, err := NewPDFRenderer(font).Render(ReservationProof(nil, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
