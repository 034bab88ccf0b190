package minio

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reporting-srv/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadResult struct {
	info *FileInfo
	err  error
}

// newTestStorage points the client at an in-process S3 endpoint that accepts every PUT.
// Each PUT blocks until release is closed.
func newTestStorage(t *testing.T, workers, queueSize int, started chan<- string, release <-chan struct{}) MinIO {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusOK)
			return
		}
		if started != nil {
			started <- r.URL.Path
		}
		if release != nil {
			<-release
		}
		w.Header().Set("ETag", `"etag-1"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	m, err := NewMinIO(&config.MinIOConfig{
		Endpoint:             strings.TrimPrefix(srv.URL, "http://"),
		AccessKey:            "access",
		SecretKey:            "secret",
		Region:               "us-east-1",
		Bucket:               "reports",
		AsyncUploadWorkers:   workers,
		AsyncUploadQueueSize: queueSize,
	})
	require.NoError(t, err)
	return m
}

func uploadRequest(name string) *UploadRequest {
	return &UploadRequest{
		BucketName:  "reports",
		ObjectName:  name,
		Reader:      strings.NewReader("pdf"),
		Size:        3,
		ContentType: "application/pdf",
	}
}

func waitResult(t *testing.T, results <-chan uploadResult) uploadResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("upload callback was not called")
		return uploadResult{}
	}
}

func TestUploadAsync_CallsDone(t *testing.T) {
	m := newTestStorage(t, 1, 1, nil, nil)
	defer m.Close()

	results := make(chan uploadResult, 1)
	id, err := m.UploadAsync(uploadRequest("pentaho/a.pdf"), func(info *FileInfo, err error) {
		results <- uploadResult{info: info, err: err}
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	r := waitResult(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, "reports", r.info.BucketName)
	assert.Equal(t, "pentaho/a.pdf", r.info.ObjectName)
	assert.Equal(t, "etag-1", r.info.ETag)
}

func TestUploadAsync_QueueFullAndDrainOnClose(t *testing.T) {
	started := make(chan string, 2)
	release := make(chan struct{})
	m := newTestStorage(t, 1, 1, started, release)

	results := make(chan uploadResult, 2)
	done := func(info *FileInfo, err error) { results <- uploadResult{info: info, err: err} }

	_, err := m.UploadAsync(uploadRequest("pentaho/first.pdf"), done)
	require.NoError(t, err)
	// the only worker is now blocked inside the first upload
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first upload did not reach the server")
	}

	_, err = m.UploadAsync(uploadRequest("pentaho/second.pdf"), done)
	require.NoError(t, err)

	_, err = m.UploadAsync(uploadRequest("pentaho/third.pdf"), done)
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	require.NoError(t, m.Close())

	// Close returns only after the queued upload has run
	require.Len(t, results, 2)
	names := []string{}
	for i := 0; i < 2; i++ {
		r := <-results
		require.NoError(t, r.err)
		names = append(names, r.info.ObjectName)
	}
	assert.ElementsMatch(t, []string{"pentaho/first.pdf", "pentaho/second.pdf"}, names)
}

func TestUploadAsync_AfterClose(t *testing.T) {
	m := newTestStorage(t, 1, 1, nil, nil)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, err := m.UploadAsync(uploadRequest("pentaho/a.pdf"), nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestUploadAsync_InvalidRequest(t *testing.T) {
	m := newTestStorage(t, 1, 1, nil, nil)
	defer m.Close()

	_, err := m.UploadAsync(&UploadRequest{BucketName: "reports"}, nil)
	var inv *InvalidInputError
	assert.ErrorAs(t, err, &inv)
}
