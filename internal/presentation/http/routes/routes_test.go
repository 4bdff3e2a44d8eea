package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/application/container"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/messaging"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

func setup(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c := container.NewContainer(page.DefaultDocument(), logging.NewDiscardLogger(), logging.NewLogFeed(10),
		container.Options{Hub: messaging.HubOptions{}})
	return SetupRoutes(c), c
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetDocument(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodGet, "/api/v1/document", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeDoc(t, w)
	assert.Equal(t, page.DefaultDocument().SiteTitle, doc["siteTitle"])
	assert.NotEmpty(t, doc["sections"])
}

func TestPutDocument_Normalizes(t *testing.T) {
	r, c := setup(t)
	w := do(r, http.MethodPut, "/api/v1/document", []byte(`{"siteTitle":"Mine","sections":[{"type":"qa","items":[{"q":"Q","a":"A"}]}]}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, "Mine", doc.SiteTitle)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "faq", doc.Sections[0].Type)
	assert.NotZero(t, doc.Sections[0].ID)
}

func TestPutDocument_MalformedIsUnprocessable(t *testing.T) {
	r, c := setup(t)
	for _, body := range []string{`{"siteTitle":"No sections"}`, `not json`} {
		w := do(r, http.MethodPut, "/api/v1/document", []byte(body))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
	}
	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, page.DefaultDocument().SiteTitle, doc.SiteTitle)
}

func TestImport_RejectsMalformedAndKeepsDocument(t *testing.T) {
	r, c := setup(t)
	before, err := c.DocumentService.Current()
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/api/v1/document/import", []byte(`{"siteTitle":"No sections"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "malformed document")

	after, err := c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, before.SiteTitle, after.SiteTitle)
	assert.Len(t, after.Sections, len(before.Sections))
}

func TestImport_Multipart(t *testing.T) {
	r, c := setup(t)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "config.json")
	require.NoError(t, err)
	_, err = fw.Write([]byte(`{"siteTitle":"Uploaded","sections":[{"id":3,"type":"text","text":"hi"}]}`))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/document/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, "Uploaded", doc.SiteTitle)
}

func TestCandidate_ReportsAliases(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodPost, "/api/v1/document/candidate",
		[]byte(`{"sections":[{"id":1,"type":"qa"},{"id":2,"type":"hologram"}]}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Report struct {
			Aliased []map[string]any `json:"aliased"`
			Unknown []map[string]any `json:"unknown"`
		} `json:"report"`
		Sections int `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Sections)
	require.Len(t, res.Report.Aliased, 1)
	assert.Equal(t, "faq", res.Report.Aliased[0]["to"])
	require.Len(t, res.Report.Unknown, 1)
	assert.Equal(t, "hologram", res.Report.Unknown[0]["from"])
}

func TestSetSectionImage(t *testing.T) {
	r, c := setup(t)
	id, err := c.DocumentService.AddSection("image", 0)
	require.NoError(t, err)

	w := do(r, http.MethodPut, "/api/v1/sections/"+itoa(id)+"/image", []byte(`{"url":"https://img.example.com/a.jpg"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	content, ok := doc.FindSection(id).Content.(*page.ImageContent)
	require.True(t, ok)
	assert.Equal(t, "https://img.example.com/a.jpg", content.Image.URL)

	w = do(r, http.MethodPut, "/api/v1/sections/"+itoa(id)+"/image", []byte(`{"url":"https://img.example.com/bg.jpg","field":"background"}`))
	require.Equal(t, http.StatusOK, w.Code)
	doc, err = c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, page.BgImage, doc.FindSection(id).BgType)

	w = do(r, http.MethodPut, "/api/v1/sections/"+itoa(id)+"/image", []byte(`{"url":"   "}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	doc, err = c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/a.jpg", doc.FindSection(id).Content.(*page.ImageContent).Image.URL)

	w = do(r, http.MethodPut, "/api/v1/sections/9999/image", []byte(`{"url":"https://x"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodPut, "/api/v1/sections/abc/image", []byte(`{"url":"https://x"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectSection(t *testing.T) {
	r, c := setup(t)
	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	id := doc.Sections[0].ID

	w := do(r, http.MethodPost, "/api/v1/sections/"+itoa(id)+"/select", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "section-"+itoa(id))
}

func TestSectionLifecycle(t *testing.T) {
	r, c := setup(t)
	w := do(r, http.MethodPost, "/api/v1/sections", []byte(`{"type":"faq"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct{ ID int }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(r, http.MethodPost, "/api/v1/sections/"+itoa(created.ID)+"/items", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	doc, err := c.DocumentService.Current()
	require.NoError(t, err)
	faq, ok := doc.FindSection(created.ID).Content.(*page.FAQContent)
	require.True(t, ok)
	assert.NotEmpty(t, faq.FAQs)

	w = do(r, http.MethodPost, "/api/v1/sections/"+itoa(created.ID)+"/move", []byte(`{"delta":-100}`))
	require.Equal(t, http.StatusOK, w.Code)
	doc, err = c.DocumentService.Current()
	require.NoError(t, err)
	assert.Equal(t, created.ID, doc.Sections[0].ID)

	w = do(r, http.MethodDelete, "/api/v1/sections/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, func() *page.Section {
		d, _ := c.DocumentService.Current()
		return d.FindSection(created.ID)
	}())

	w = do(r, http.MethodPost, "/api/v1/sections", []byte(`{"type":"hologram"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportDownloads(t *testing.T) {
	r, _ := setup(t)

	w := do(r, http.MethodGet, "/api/v1/export/html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="index.html"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))

	w = do(r, http.MethodGet, "/api/v1/export/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="config.json"`, w.Header().Get("Content-Disposition"))
	assert.True(t, json.Valid(w.Body.Bytes()))
}

func TestPreview(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodGet, "/preview?viewport=mobile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, "mobile", dom.Find("body").AttrOr("data-viewport", ""))
	assert.NotZero(t, dom.Find("section[data-section-id]").Length())
}

func TestRegistry(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodGet, "/api/v1/registry", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contract struct {
		Types   []map[string]any  `json:"types"`
		Aliases map[string]string `json:"aliases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contract))
	assert.Len(t, contract.Types, 24)
	assert.Equal(t, "faq", contract.Aliases["qa"])
}

func TestLogLevels(t *testing.T) {
	r, _ := setup(t)
	w := do(r, http.MethodPut, "/api/v1/logs/levels", []byte(`{"channel":"render","level":"DEBUG"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/v1/logs/levels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var levels map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	assert.Equal(t, "DEBUG", levels["render"])

	w = do(r, http.MethodPut, "/api/v1/logs/levels", []byte(`{"channel":"render","level":"LOUD"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsAfterExport(t *testing.T) {
	r, _ := setup(t)
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/export/html", nil).Code)

	w := do(r, http.MethodGet, "/api/v1/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap struct {
		Operations []struct {
			Operation string `json:"operation"`
			Count     int    `json:"count"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.Operations)
	assert.Equal(t, "export:html", snap.Operations[0].Operation)
	assert.Equal(t, 1, snap.Operations[0].Count)
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
