package services

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/performance"
)

const sampleDoc = `{
  "siteTitle": "Sample",
  "sections": [
    {"id": 1, "type": "text", "text": "one"},
    {"id": 2, "type": "image", "image": {"url": "https://img.example.com/a.jpg", "alt": "kept alt"}},
    {"id": 3, "type": "box", "children": [{"id": 4, "type": "text", "text": "nested"}]},
    {"id": 5, "type": "bubble", "text": "hi"}
  ]
}`

func newDocs(t *testing.T) *DocumentService {
	t.Helper()
	doc, err := normalize.Decode([]byte(sampleDoc))
	require.NoError(t, err)
	return NewDocumentService(doc, logging.NewDiscardLogger())
}

func ids(doc *page.Document) []int {
	out := make([]int, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.ID)
	}
	return out
}

func TestDocumentService_CurrentIsACopy(t *testing.T) {
	docs := newDocs(t)
	a, err := docs.Current()
	require.NoError(t, err)
	a.SiteTitle = "changed"

	b, err := docs.Current()
	require.NoError(t, err)
	assert.Equal(t, "Sample", b.SiteTitle)
}

func TestDocumentService_SetSectionImageKeepsAlt(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.SetSectionImage(2, "image", "https://img.example.com/b.jpg"))

	doc, err := docs.Current()
	require.NoError(t, err)
	img := doc.FindSection(2).Content.(*page.ImageContent).Image
	assert.Equal(t, "https://img.example.com/b.jpg", img.URL)
	assert.Equal(t, "kept alt", img.Alt)
}

func TestDocumentService_SetSectionImageAvatar(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.SetSectionImage(5, "avatar", "https://img.example.com/face.jpg"))

	doc, err := docs.Current()
	require.NoError(t, err)
	bubble := doc.FindSection(5).Content.(*page.SpeechBubbleContent)
	require.NotNil(t, bubble.Avatar)
	assert.Equal(t, "https://img.example.com/face.jpg", bubble.Avatar.URL)
}

func TestDocumentService_SetSectionImageErrors(t *testing.T) {
	docs := newDocs(t)
	assert.ErrorIs(t, docs.SetSectionImage(99, "image", "https://x"), ErrSectionNotFound)
	assert.Error(t, docs.SetSectionImage(1, "image", "https://x"))
}

func TestDocumentService_SetSectionBackground(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.SetSectionBackground(4, "https://img.example.com/bg.jpg"))

	doc, err := docs.Current()
	require.NoError(t, err)
	nested := doc.FindSection(4)
	assert.Equal(t, page.BgImage, nested.BgType)
	assert.Equal(t, "https://img.example.com/bg.jpg", nested.BgValue)
}

func TestDocumentService_ImageIngressIsNormalized(t *testing.T) {
	docs := newDocs(t)

	assert.ErrorIs(t, docs.SetSectionImage(2, "image", "   "), ErrBlankImageURL)
	assert.ErrorIs(t, docs.SetSectionBackground(1, ""), ErrBlankImageURL)
	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/a.jpg", doc.FindSection(2).Content.(*page.ImageContent).Image.URL)

	require.NoError(t, docs.SetSectionImage(2, "image", `url("https://img.example.com/c.jpg")`))
	require.NoError(t, docs.SetSectionBackground(1, ` url('https://img.example.com/bg.jpg') `))

	doc, err = docs.Current()
	require.NoError(t, err)
	img := doc.FindSection(2).Content.(*page.ImageContent).Image
	require.NotNil(t, img)
	assert.Equal(t, "https://img.example.com/c.jpg", img.URL)
	assert.Equal(t, "kept alt", img.Alt)
	assert.Equal(t, page.BgImage, doc.FindSection(1).BgType)
	assert.Equal(t, "https://img.example.com/bg.jpg", doc.FindSection(1).BgValue)

	raw, err := normalize.Raw(doc)
	require.NoError(t, err)
	again, err := normalize.Typed(normalize.Document(raw))
	require.NoError(t, err)
	assert.Equal(t, doc.FindSection(1).BgValue, again.FindSection(1).BgValue)
	assert.Equal(t, img, again.FindSection(2).Content.(*page.ImageContent).Image)
}

func TestDocumentService_SetBackgroundKeepsChildren(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.SetSectionBackground(3, "https://img.example.com/bg.jpg"))

	doc, err := docs.Current()
	require.NoError(t, err)
	require.Len(t, doc.FindSection(3).Children, 1)
	assert.Equal(t, 4, doc.FindSection(3).Children[0].ID)
}

func TestDocumentService_AddSection(t *testing.T) {
	docs := newDocs(t)

	id, err := docs.AddSection("qa", 1)
	require.NoError(t, err)
	assert.Equal(t, 6, id)

	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 2, 3, 5}, ids(doc))
	assert.Equal(t, "faq", doc.FindSection(id).Type)

	_, err = docs.AddSection("hologram", 0)
	assert.Error(t, err)
	_, err = docs.AddSection("text", 42)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestDocumentService_RemoveNestedSection(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.RemoveSection(4))

	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Nil(t, doc.FindSection(4))
	assert.Empty(t, doc.FindSection(3).Children)
	assert.ErrorIs(t, docs.RemoveSection(4), ErrSectionNotFound)
}

func TestDocumentService_MoveSectionClamps(t *testing.T) {
	docs := newDocs(t)
	require.NoError(t, docs.MoveSection(1, 10))
	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 1}, ids(doc))

	require.NoError(t, docs.MoveSection(5, -1))
	doc, err = docs.Current()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 3, 1}, ids(doc))
}

func TestDocumentService_AddItem(t *testing.T) {
	docs := newDocs(t)
	id, err := docs.AddSection("faq", 0)
	require.NoError(t, err)

	before, err := docs.Current()
	require.NoError(t, err)
	n := len(before.FindSection(id).Content.(*page.FAQContent).FAQs)

	itemID, err := docs.AddItem(id)
	require.NoError(t, err)

	after, err := docs.Current()
	require.NoError(t, err)
	faqs := after.FindSection(id).Content.(*page.FAQContent).FAQs
	require.Len(t, faqs, n+1)
	assert.Equal(t, itemID, faqs[n].ID)

	_, err = docs.AddItem(1)
	assert.Error(t, err, "text sections have no item list")
}

func TestDocumentService_ImportMalformedKeepsDocument(t *testing.T) {
	docs := newDocs(t)
	_, err := docs.Import([]byte(`{"siteTitle":"x"}`))
	assert.ErrorIs(t, err, normalize.ErrMalformedDocument)
	_, err = docs.Import([]byte(`not json`))
	assert.ErrorIs(t, err, normalize.ErrMalformedDocument)

	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Equal(t, "Sample", doc.SiteTitle)
}

func TestDocumentService_SubscribersSeeChanges(t *testing.T) {
	docs := newDocs(t)
	var got []Change
	docs.Subscribe(func(_ *page.Document, c Change) { got = append(got, c) })

	require.NoError(t, docs.SelectSection(3))
	require.NoError(t, docs.RemoveSection(1))
	assert.ErrorIs(t, docs.SelectSection(1), ErrSectionNotFound)

	require.Len(t, got, 2)
	assert.Equal(t, Change{Kind: ChangeSelected, SectionID: 3}, got[0])
	assert.Equal(t, ChangeRemoved, got[1].Kind)
}

func TestIngestService_Accept(t *testing.T) {
	docs := newDocs(t)
	ingest := NewIngestService(docs, logging.NewDiscardLogger())

	res, err := ingest.Accept([]byte(`{"sections":[{"type":"questions"},{"type":"hologram"},{"type":"text"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Sections)
	require.Len(t, res.Report.Aliased, 1)
	assert.Equal(t, "faq", res.Report.Aliased[0].To)
	require.Len(t, res.Report.Unknown, 1)

	doc, err := docs.Current()
	require.NoError(t, err)
	assert.Len(t, doc.Sections, 3)

	_, err = ingest.Accept([]byte(`[]`))
	assert.ErrorIs(t, err, normalize.ErrMalformedDocument)
}

func TestIngestService_Contract(t *testing.T) {
	c := NewIngestService(newDocs(t), logging.NewDiscardLogger()).Contract()
	assert.Len(t, c.Types, 24)
	assert.Equal(t, "faq", c.Aliases["qa"])
}

func TestExportService_WriteFiles(t *testing.T) {
	tracker := performance.NewTracker(nil)
	dir := filepath.Join(t.TempDir(), "out")
	docs := newDocs(t)
	doc, err := docs.Current()
	require.NoError(t, err)

	written, err := NewExportService(nil, tracker, logging.NewDiscardLogger()).WriteFiles(doc, dir)
	require.NoError(t, err)
	require.Len(t, written, 2)

	html, err := os.ReadFile(filepath.Join(dir, HTMLFileName))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<!DOCTYPE html>")

	config, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	back, err := normalize.Decode(config)
	require.NoError(t, err)
	assert.Equal(t, ids(doc), ids(back))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")

	assert.Len(t, tracker.GetMetrics(performance.OpExportWrite), 1)
	assert.Len(t, tracker.GetMetrics(performance.OpExportHTML), 1)
}

type fakeHub struct {
	mu       sync.Mutex
	clients  int
	messages []messaging.Message
	renders  int
}

func (f *fakeHub) Broadcast(msg messaging.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}

func (f *fakeHub) BroadcastRender(render messaging.RenderFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := render("desktop"); err == nil {
		f.renders++
	}
}

func (f *fakeHub) ClientCount() int { return f.clients }

func TestPreviewService_PushesOnChange(t *testing.T) {
	docs := newDocs(t)
	hub := &fakeHub{clients: 1}
	preview := NewPreviewService(docs, hub, nil, logging.NewDiscardLogger())

	require.NoError(t, docs.SetSectionBackground(2, "https://img.example.com/bg.jpg"))
	assert.Equal(t, 1, hub.renders)
	require.Len(t, hub.messages, 1)
	assert.Equal(t, messaging.Message{Type: messaging.MessageScroll, SectionID: 2}, hub.messages[0])

	require.NoError(t, docs.SelectSection(3))
	assert.Equal(t, 1, hub.renders, "selection only scrolls")
	assert.Equal(t, 3, hub.messages[1].SectionID)

	out, err := preview.Render("mobile")
	require.NoError(t, err)
	assert.Contains(t, out, `data-viewport="mobile"`)
	assert.Contains(t, out, "bg.jpg")
}

func TestPreviewService_NoClientsNoRender(t *testing.T) {
	docs := newDocs(t)
	hub := &fakeHub{}
	NewPreviewService(docs, hub, nil, logging.NewDiscardLogger())

	require.NoError(t, docs.RemoveSection(1))
	assert.Zero(t, hub.renders)
	assert.Empty(t, hub.messages)
}

func TestParseViewport(t *testing.T) {
	assert.Equal(t, "mobile", string(ParseViewport("mobile")))
	assert.Equal(t, "responsive", string(ParseViewport("responsive")))
	assert.Equal(t, "desktop", string(ParseViewport("tablet")))
}
