package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// writeFile creates a file under t.TempDir and returns its UploadFile.
func writeFile(t *testing.T, name string, content []byte) domain.UploadFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return *domain.NewUploadFile(path)
}

// received captures what the test server saw.
type received struct {
	method      string
	path        string
	fileName    string
	contentType string
	body        []byte
}

func ingestServer(t *testing.T, status int, response string, got *received) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.method = r.Method
			got.path = r.URL.Path
			if f, header, err := r.FormFile("file"); err == nil {
				got.fileName = header.Filename
				got.contentType = header.Header.Get("Content-Type")
				got.body, _ = io.ReadAll(f)
				f.Close()
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Ingest_Success(t *testing.T) {
	var got received
	srv := ingestServer(t, http.StatusOK,
		`{"predicted_label":"invoice","probability":0.873,"route_to":"finance","stored_at":"/data/a.pdf","note":"routed_successfully"}`,
		&got)
	file := writeFile(t, "a.pdf", []byte("%PDF-1.4\n%fake"))

	doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, "invoice", doc.PredictedLabel)
	require.NotNil(t, doc.Probability)
	assert.InDelta(t, 0.873, *doc.Probability, 1e-9)
	assert.Equal(t, domain.DepartmentFinance, doc.RouteTo)
	assert.Equal(t, "finance", doc.RawRouteTo)
	assert.Equal(t, "/data/a.pdf", doc.StoredAt)
	assert.Equal(t, "routed_successfully", doc.Note)
	assert.Empty(t, doc.ID, "IDs are assigned on registration")

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/ingest", got.path)
	assert.Equal(t, "a.pdf", got.fileName)
	assert.Equal(t, "application/pdf", got.contentType)
	assert.Equal(t, []byte("%PDF-1.4\n%fake"), got.body)
}

func TestClient_Ingest_TrailingSlashBaseURL(t *testing.T) {
	var got received
	srv := ingestServer(t, http.StatusOK,
		`{"predicted_label":"memo","probability":0.5,"route_to":"admin","stored_at":"m.txt"}`, &got)

	_, err := NewClient(srv.URL+"/", 0).Ingest(context.Background(), writeFile(t, "m.txt", []byte("hello")))

	require.NoError(t, err)
	assert.Equal(t, "/ingest", got.path)
}

func TestClient_Ingest_NullProbability(t *testing.T) {
	srv := ingestServer(t, http.StatusOK,
		`{"predicted_label":"unknown","probability":null,"route_to":"manual_review","stored_at":"/data/x.png"}`, nil)

	doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "x.png", []byte("x")))

	require.NoError(t, err)
	assert.Nil(t, doc.Probability)
	assert.Equal(t, domain.DepartmentManualReview, doc.RouteTo)
}

func TestClient_Ingest_UnknownRouteIsQuarantined(t *testing.T) {
	srv := ingestServer(t, http.StatusOK,
		`{"predicted_label":"contract","probability":0.7,"route_to":"legal","stored_at":"/data/c.pdf"}`, nil)

	doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "c.pdf", []byte("c")))

	require.NoError(t, err)
	assert.Equal(t, domain.DepartmentUnrouted, doc.RouteTo)
	assert.Equal(t, "legal", doc.RawRouteTo)
}

func TestClient_Ingest_EmptyRouteIsQuarantined(t *testing.T) {
	srv := ingestServer(t, http.StatusOK,
		`{"predicted_label":"invoice","probability":0.9,"route_to":"","stored_at":"/data/a.pdf"}`, nil)

	doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

	require.NoError(t, err)
	assert.Equal(t, domain.DepartmentUnrouted, doc.RouteTo)
	assert.Empty(t, doc.RawRouteTo)
	assert.False(t, doc.Routed())
}

func TestClient_Ingest_ProbabilityNotRangeChecked(t *testing.T) {
	tests := []struct {
		name string
		p    string
		want float64
	}{
		{"above one", "1.5", 1.5},
		{"negative", "-0.2", -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := ingestServer(t, http.StatusOK,
				`{"predicted_label":"invoice","probability":`+tt.p+`,"route_to":"finance","stored_at":"/data/a.pdf"}`, nil)

			doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

			require.NoError(t, err)
			require.NotNil(t, doc.Probability)
			assert.InDelta(t, tt.want, *doc.Probability, 1e-9)
			assert.Equal(t, domain.DepartmentFinance, doc.RouteTo)
		})
	}
}

func TestClient_Ingest_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`},
		{"bad request", http.StatusBadRequest, `{"detail":"Missing file"}`},
		{"not json", http.StatusOK, `<html>oops</html>`},
		{"missing route", http.StatusOK, `{"predicted_label":"invoice","probability":0.9,"stored_at":"/a"}`},
		{"missing label", http.StatusOK, `{"probability":0.9,"route_to":"finance","stored_at":"/a"}`},
		{"missing stored_at", http.StatusOK, `{"predicted_label":"invoice","route_to":"finance"}`},
		{"error object", http.StatusOK, `{"error":"model not loaded"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := ingestServer(t, tt.status, tt.body, nil)

			doc, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

			assert.Nil(t, doc)
			assert.ErrorIs(t, err, domain.ErrUploadFailed)
		})
	}
}

func TestClient_Ingest_StatusInError(t *testing.T) {
	srv := ingestServer(t, http.StatusInternalServerError, `Internal Server Error`, nil)

	_, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Ingest_NoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Equal(t, 1, calls)
}

func TestClient_Ingest_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestClient_Ingest_MissingFile(t *testing.T) {
	srv := ingestServer(t, http.StatusOK, `{}`, nil)
	file := domain.UploadFile{Name: "gone.pdf", Path: filepath.Join(t.TempDir(), "gone.pdf")}

	_, err := NewClient(srv.URL, 0).Ingest(context.Background(), file)

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClient_Ingest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 50*time.Millisecond).Ingest(context.Background(), writeFile(t, "a.pdf", []byte("a")))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestClient_Ingest_ContextCancelled(t *testing.T) {
	srv := ingestServer(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 0).Ingest(ctx, writeFile(t, "a.pdf", []byte("a")))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_BaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000", NewClient("http://localhost:8000/", 0).BaseURL())
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"empty", nil, "application/octet-stream"},
		{"pdf", []byte("%PDF-1.7\n"), "application/pdf"},
		{"text", []byte("quarterly invoice total"), "text/plain; charset=utf-8"},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectContentType(tt.head))
		})
	}
}
