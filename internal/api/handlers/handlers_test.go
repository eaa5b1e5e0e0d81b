package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/internal/cache"
	"talentlens/internal/config"
	"talentlens/internal/extractor"
	"talentlens/internal/llm"
	"talentlens/internal/matching"
	"talentlens/internal/search"
)

func handlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Search.Timeout = 5 * time.Second
	cfg.Extractor.MaxFileSize = 1 << 20
	cfg.Extractor.MinTextLength = 50
	cfg.Match.Concurrency = 2
	cfg.Match.RateLimit = 600
	return cfg
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func newContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProcessQueryMissingHeaders(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := ProcessQueryHandler(cfg, search.NewClient(cfg), llm.NewManager(cfg))

	req := httptest.NewRequest(http.MethodPost, "/process-query/", strings.NewReader(`{"query": "go devs"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: elastic_url", detailOf(t, rec))

	req = httptest.NewRequest(http.MethodPost, "/process-query/", strings.NewReader(`{"query": "go devs"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("elastic_url", "http://localhost:9200")
	c, rec = newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: openai_api_key", detailOf(t, rec))
}

func TestProcessQueryMissingQueryText(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := ProcessQueryHandler(cfg, search.NewClient(cfg), llm.NewManager(cfg))

	req := httptest.NewRequest(http.MethodPost, "/process-query/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("elastic_url", "http://localhost:9200")
	req.Header.Set("openai_api_key", "sk-test")
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Query text is required", detailOf(t, rec))
}

func TestParseJDMissingInputs(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	var jdCache *cache.JDCache
	handler := ParseJDHandler(cfg, llm.NewManager(cfg), jdCache)

	form := "job_description=We+need+a+Go+developer"

	req := httptest.NewRequest(http.MethodPost, "/parse_jd/", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required form field: job_description", detailOf(t, rec))

	req = httptest.NewRequest(http.MethodPost, "/parse_jd/", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec = newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: job_id", detailOf(t, rec))

	req = httptest.NewRequest(http.MethodPost, "/parse_jd/", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("job_id", "jd-42")
	c, rec = newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: authorization", detailOf(t, rec))
}

func TestMatchMissingHeader(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := MatchHandler(cfg, llm.NewManager(cfg), matching.NewScorer(cfg))

	req := httptest.NewRequest(http.MethodPost, "/match/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: openai_api_key", detailOf(t, rec))
}

func TestMatchMissingDocuments(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := MatchHandler(cfg, llm.NewManager(cfg), matching.NewScorer(cfg))

	bodies := []string{
		`{}`,
		`{"job_description": {"parsed_data": {"Skills": {"Languages": ["Go"]}}}, "resume": {"response": {}}}`,
		`{"job_description": {"parsed_data": {}}, "resume": {"response": {"skills": ["Go"]}}}`,
	}

	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/match/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("openai_api_key", "sk-test")
		c, rec := newContext(e, req)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Job description or resume data is missing.", detailOf(t, rec))
	}
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadResumeMissingHeader(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := UploadResumeHandler(cfg, llm.NewManager(cfg), extractor.New(cfg))

	body, contentType := multipartUpload(t, "resume.pdf", "dummy")
	req := httptest.NewRequest(http.MethodPost, "/upload_resume/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required header: openai_api_key", detailOf(t, rec))
}

func TestUploadResumeMissingFile(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := UploadResumeHandler(cfg, llm.NewManager(cfg), extractor.New(cfg))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload_resume/", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set("openai_api_key", "sk-test")
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required file upload: file", detailOf(t, rec))
}

func TestUploadResumeUnsupportedFormat(t *testing.T) {
	cfg := handlerTestConfig()
	e := echo.New()
	handler := UploadResumeHandler(cfg, llm.NewManager(cfg), extractor.New(cfg))

	body, contentType := multipartUpload(t, "resume.txt", "plain text resume")
	req := httptest.NewRequest(http.MethodPost, "/upload_resume/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("openai_api_key", "sk-test")
	c, rec := newContext(e, req)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unsupported file format. Please upload a PDF or DOCX file.", detailOf(t, rec))
}
