package visualize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/config"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/media"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/schema"
)

type fakeAnalyzer struct {
	analysis string
	err      error
	calls    int
}

func (f *fakeAnalyzer) DescribeRoom(_ context.Context, _ []byte, _ string) (string, error) {
	f.calls++
	return f.analysis, f.err
}

type fakeRenderer struct {
	result     ImageResult
	err        error
	lastPrompt string
}

func (f *fakeRenderer) Render(_ context.Context, prompt string) (ImageResult, error) {
	f.lastPrompt = prompt
	return f.result, f.err
}

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(_ context.Context, _ media.UploadInput) (media.UploadResult, error) {
	if f.err != nil {
		return media.UploadResult{}, f.err
	}
	return media.UploadResult{Key: "renders/abc.png", URL: f.url}, nil
}

// pngBytes is not a real PNG; the handler only needs opaque image bytes.
var pngBytes = bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 2560)

func multipartBody(t *testing.T, includeImage bool, furnitureItems string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if includeImage {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="room.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(pngBytes)
		require.NoError(t, err)
	}

	if furnitureItems != "" {
		require.NoError(t, writer.WriteField("furnitureItems", furnitureItems))
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func postVisualize(t *testing.T, h Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/visualize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Visualize(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload["error"]
}

func decodeVisualizeResponse(t *testing.T, rec *httptest.ResponseRecorder) schema.VisualizeResponse {
	t.Helper()
	var resp schema.VisualizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestVisualizeRequiresImage(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	h := Handler{Analyzer: analyzer, Renderer: &fakeRenderer{}, Policy: config.PolicyFallback}

	body, contentType := multipartBody(t, false, `["Velvet Armchair"]`)
	rec := postVisualize(t, h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No image file provided", errorMessage(t, rec))
	assert.Zero(t, analyzer.calls)
}

func TestVisualizeRequiresFurnitureItems(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	h := Handler{Analyzer: analyzer, Renderer: &fakeRenderer{}, Policy: config.PolicyFallback}

	for _, items := range []string{"[]", ""} {
		body, contentType := multipartBody(t, true, items)
		rec := postVisualize(t, h, body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No furniture items selected", errorMessage(t, rec))
	}
	assert.Zero(t, analyzer.calls)
}

func TestVisualizeRejectsMalformedFurnitureItems(t *testing.T) {
	h := Handler{Analyzer: &fakeAnalyzer{}, Renderer: &fakeRenderer{}, Policy: config.PolicyFallback}

	body, contentType := multipartBody(t, true, `not-json`)
	rec := postVisualize(t, h, body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisualizeSuccess(t *testing.T) {
	renderer := &fakeRenderer{result: ImageResult{URL: "https://renders.example.com/room.png"}}
	h := Handler{
		Analyzer: &fakeAnalyzer{analysis: "bright living room with white walls"},
		Renderer: renderer,
		Policy:   config.PolicyFallback,
	}

	body, contentType := multipartBody(t, true, `["Velvet Armchair"]`)
	rec := postVisualize(t, h, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeVisualizeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.OriginalImageURL, "data:image/png;base64,"),
		"original image should be a png data URI")
	assert.Equal(t, "https://renders.example.com/room.png", resp.ProcessedImageURL)
	assert.Equal(t, "bright living room with white walls", resp.RoomAnalysis)
	assert.Equal(t, []string{"Velvet Armchair"}, resp.FurnitureItems)

	assert.Contains(t, renderer.lastPrompt, "bright living room with white walls")
	assert.Contains(t, renderer.lastPrompt, "Velvet Armchair")
}

func TestVisualizeHostsInlineRenderViaUploader(t *testing.T) {
	h := Handler{
		Analyzer: &fakeAnalyzer{analysis: "cozy bedroom"},
		Renderer: &fakeRenderer{result: ImageResult{Data: []byte("fake-png"), MIME: "image/png"}},
		Uploader: &fakeUploader{url: "https://cdn.example.com/renders/abc.png"},
		Policy:   config.PolicyFallback,
	}

	body, contentType := multipartBody(t, true, `["Floor Lamp","Bookshelf"]`)
	rec := postVisualize(t, h, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeVisualizeResponse(t, rec)
	assert.Equal(t, "https://cdn.example.com/renders/abc.png", resp.ProcessedImageURL)
	assert.Equal(t, []string{"Floor Lamp", "Bookshelf"}, resp.FurnitureItems)
}

func TestVisualizeInlineRenderFallsBackToDataURI(t *testing.T) {
	h := Handler{
		Analyzer: &fakeAnalyzer{analysis: "cozy bedroom"},
		Renderer: &fakeRenderer{result: ImageResult{Data: []byte("fake-png"), MIME: "image/png"}},
		Uploader: media.Disabled(),
		Policy:   config.PolicyFallback,
	}

	body, contentType := multipartBody(t, true, `["Floor Lamp"]`)
	rec := postVisualize(t, h, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeVisualizeResponse(t, rec)
	assert.True(t, strings.HasPrefix(resp.ProcessedImageURL, "data:image/png;base64,"))
}

func TestVisualizeFallsBackOnAnalyzerFailure(t *testing.T) {
	h := Handler{
		Analyzer: &fakeAnalyzer{err: errors.New("vision down")},
		Renderer: &fakeRenderer{},
		Policy:   config.PolicyFallback,
	}

	body, contentType := multipartBody(t, true, `["Velvet Armchair"]`)
	rec := postVisualize(t, h, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeVisualizeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, fallbackImageURL, resp.ProcessedImageURL)
	assert.Equal(t, fallbackRoomAnalysis, resp.RoomAnalysis)
	assert.Equal(t, []string{"Velvet Armchair"}, resp.FurnitureItems)
	assert.True(t, strings.HasPrefix(resp.OriginalImageURL, "data:image/png;base64,"),
		"fallback should reuse the parsed upload")
}

func TestVisualizeFallsBackOnRendererFailure(t *testing.T) {
	h := Handler{
		Analyzer: &fakeAnalyzer{analysis: "bright kitchen"},
		Renderer: &fakeRenderer{err: errors.New("render quota exceeded")},
		Policy:   config.PolicyFallback,
	}

	body, contentType := multipartBody(t, true, `["Bar Stool"]`)
	rec := postVisualize(t, h, body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeVisualizeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, fallbackImageURL, resp.ProcessedImageURL)
}

func TestVisualizeErrorPolicySurfaces500(t *testing.T) {
	h := Handler{
		Analyzer: &fakeAnalyzer{err: errors.New("vision down")},
		Renderer: &fakeRenderer{},
		Policy:   config.PolicyError,
	}

	body, contentType := multipartBody(t, true, `["Velvet Armchair"]`)
	rec := postVisualize(t, h, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, errorMessage(t, rec))
}
