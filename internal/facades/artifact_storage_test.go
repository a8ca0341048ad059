package facades

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPut struct {
	method      string
	path        string
	contentType string
	body        string
}

func newFakeS3(t *testing.T) (*httptest.Server, *capturedPut) {
	t.Helper()
	got := &capturedPut{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.body = string(body)
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestS3ArtifactStorage_Put(t *testing.T) {
	srv, got := newFakeS3(t)

	storage, err := NewS3ArtifactStorage(context.Background(), srv.URL, "us-east-1", "minio", "minio123", "reports")
	require.NoError(t, err)

	err = storage.Put(context.Background(), "reports/alice/report.txt", []byte("Water Quality Report"), "text/plain")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/reports/reports/alice/report.txt", got.path)
	assert.Equal(t, "text/plain", got.contentType)
	assert.Equal(t, "Water Quality Report", got.body)
}

func TestS3ArtifactStorage_PutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	storage, err := NewS3ArtifactStorage(context.Background(), srv.URL, "us-east-1", "minio", "minio123", "reports")
	require.NoError(t, err)

	err = storage.Put(context.Background(), "k", []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestS3ArtifactStorage_PresignGet(t *testing.T) {
	storage, err := NewS3ArtifactStorage(context.Background(), "http://127.0.0.1:9000", "us-east-1", "minio", "minio123", "reports")
	require.NoError(t, err)

	url, err := storage.PresignGet(context.Background(), "reports/alice/report.txt")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/reports/reports/alice/report.txt?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}
