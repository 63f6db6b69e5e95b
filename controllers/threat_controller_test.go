package controllers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"ThreatLens/models"
	"ThreatLens/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal PNG header; the stub never decodes it
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

type stubModelClient struct {
	text  string
	err   error
	calls int

	lastImage models.ImagePart
}

func (s *stubModelClient) GenerateThreatModel(ctx context.Context, prompt string, image models.ImagePart) (string, error) {
	s.calls++
	s.lastImage = image
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubModelClient) GetName() string  { return "stub" }
func (s *stubModelClient) GetModel() string { return "stub-model" }

func newTestRouter(stub *stubModelClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewThreatController(services.NewThreatService(stub))
	r := gin.New()
	r.POST("/analyze_threats", controller.AnalyzeThreats)
	r.POST("/analisar_ameacas", controller.AnalyzeThreats)
	return r
}

// formOptions tweaks the multipart body built by buildForm
type formOptions struct {
	skipField  string
	omitImage  bool
	bareImage  bool // image part without a Content-Type header
	promptLang string
}

func buildForm(t *testing.T, opts formOptions) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"application_type":        "web app",
		"authentication_methods":  "OAuth2",
		"internet_exposed":        "yes",
		"sensitive_data":          "PII",
		"application_description": "internal HR portal",
	}
	if opts.promptLang != "" {
		fields["prompt_language"] = opts.promptLang
	}
	for name, value := range fields {
		if name == opts.skipField {
			continue
		}
		require.NoError(t, writer.WriteField(name, value))
	}

	if !opts.omitImage {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="image"; filename="diagram.png"`)
		if !opts.bareImage {
			h.Set("Content-Type", "image/png")
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(pngBytes)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postForm(r *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeThreats_EndToEnd(t *testing.T) {
	modelOutput := `{"threat_model":[{"Threat Type":"Spoofing","Scenario":"s","Potential Impact":"i"}],"improvement_suggestions":["use MFA"]}`
	stub := &stubModelClient{text: modelOutput}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{promptLang: "en"})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, modelOutput, w.Body.String())
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeThreats_PortugueseRouteAlias(t *testing.T) {
	stub := &stubModelClient{text: `{"threat_model":[],"improvement_suggestions":[]}`}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{promptLang: "pt"})
	w := postForm(r, "/analisar_ameacas", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeThreats_NonJSONModelOutputReturnsRawText(t *testing.T) {
	stub := &stubModelClient{text: "I cannot comply"}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"raw_text":"I cannot comply"}`, w.Body.String())
}

func TestAnalyzeThreats_ModelFailureReturns500(t *testing.T) {
	stub := &stubModelClient{err: errors.New("network failure")}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"network failure"}`, w.Body.String())
}

func TestAnalyzeThreats_MissingFieldFailsBeforeModelCall(t *testing.T) {
	stub := &stubModelClient{text: "{}"}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{skipField: "application_type"})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeThreats_MissingImageFailsBeforeModelCall(t *testing.T) {
	stub := &stubModelClient{text: "{}"}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{omitImage: true})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeThreats_ImageWithoutContentTypeDefaultsToPNG(t *testing.T) {
	stub := &stubModelClient{text: "{}"}
	r := newTestRouter(stub)

	body, contentType := buildForm(t, formOptions{bareImage: true})
	w := postForm(r, "/analyze_threats", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", stub.lastImage.MimeType)
	assert.Equal(t, pngBytes, stub.lastImage.Data)
}

func TestAnalyzeThreats_DeclaredMimeTypeIsForwarded(t *testing.T) {
	stub := &stubModelClient{text: "{}"}
	r := newTestRouter(stub)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range map[string]string{
		"application_type":        "api",
		"authentication_methods":  "mTLS",
		"internet_exposed":        "no",
		"sensitive_data":          "none",
		"application_description": "batch job",
	} {
		require.NoError(t, writer.WriteField(name, value))
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="diagram.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := postForm(r, "/analyze_threats", body, writer.FormDataContentType())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", stub.lastImage.MimeType)
}
