package services

import (
	"sync"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/live"
)

// PreviewService renders the live page and keeps connected previews in step
// with the working document.
type PreviewService struct {
	docs    *DocumentService
	hub     messaging.Broadcaster
	tracker *performance.Tracker
	logger  *logging.ChanneledLogger

	mu   sync.RWMutex
	last *page.Document
}

var _ messaging.Handler = (*PreviewService)(nil)

// NewPreviewService wires the service to document changes. tracker may be nil.
func NewPreviewService(docs *DocumentService, hub messaging.Broadcaster, tracker *performance.Tracker, logger *logging.ChanneledLogger) *PreviewService {
	p := &PreviewService{docs: docs, hub: hub, tracker: tracker, logger: logger}
	docs.Subscribe(p.onChange)
	return p
}

// ParseViewport maps a name to a viewport, falling back to desktop.
func ParseViewport(name string) rendering.Viewport {
	switch rendering.Viewport(name) {
	case rendering.ViewportMobile, rendering.ViewportResponsive:
		return rendering.Viewport(name)
	default:
		return rendering.ViewportDesktop
	}
}

// Render renders the working document for viewport.
func (p *PreviewService) Render(viewport string) (string, error) {
	doc := p.snapshot()
	if doc == nil {
		var err error
		if doc, err = p.docs.Current(); err != nil {
			return "", err
		}
	}
	marker := p.tracker.StartOperation(performance.OpPreviewRender)
	marker.AddMetadata("viewport", viewport)
	defer p.tracker.CompleteOperation(marker)

	out, err := live.RenderPage(doc, ParseViewport(viewport))
	if err != nil {
		marker.SetError(err)
		p.logger.LogError(logging.ChannelRender, "preview", err, map[string]any{"viewport": viewport})
		return "", err
	}
	return out, nil
}

func (p *PreviewService) snapshot() *page.Document {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *PreviewService) onChange(doc *page.Document, change Change) {
	if change.Kind == ChangeSelected {
		p.hub.Broadcast(messaging.Message{Type: messaging.MessageScroll, SectionID: change.SectionID})
		return
	}
	p.mu.Lock()
	p.last = doc
	p.mu.Unlock()

	if p.hub.ClientCount() == 0 {
		return
	}
	p.hub.BroadcastRender(p.Render)
	if change.SectionID != 0 && change.Kind != ChangeRemoved {
		p.hub.Broadcast(messaging.Message{Type: messaging.MessageScroll, SectionID: change.SectionID})
	}
	p.logger.Preview().Debug("Preview refreshed", "change", change.Kind, "clients", p.hub.ClientCount())
}

// Connected sends a new client its first render.
func (p *PreviewService) Connected(c *messaging.Client) {
	c.SendRender(p.Render)
}

// Received handles frames sent by a preview.
func (p *PreviewService) Received(c *messaging.Client, msg messaging.Message) {
	switch msg.Type {
	case messaging.MessageViewport:
		c.SetViewport(string(ParseViewport(msg.Viewport)))
		c.SendRender(p.Render)
	case messaging.MessageSelect:
		if err := p.docs.SelectSection(msg.SectionID); err != nil {
			c.Send(messaging.Message{Type: messaging.MessageError, Error: err.Error()})
		}
	default:
		p.logger.Preview().Debug("Ignoring preview frame", "type", msg.Type)
	}
}
