package pentaho

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputType(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputType
		wantErr bool
	}{
		{in: "", want: OutputHTML},
		{in: "pdf", want: OutputPDF},
		{in: "Xls", want: OutputXLS},
		{in: " CSV ", want: OutputCSV},
		{in: "html", want: OutputHTML},
		{in: "docx", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedOutputType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputType_Metadata(t *testing.T) {
	assert.Equal(t, "application/pdf", OutputPDF.ContentType())
	assert.Equal(t, "application/vnd.ms-excel", OutputXLS.ContentType())
	assert.Equal(t, "xls", OutputXLS.Extension())
	assert.True(t, OutputCSV.IsAttachment())
	assert.False(t, OutputPDF.IsAttachment())
	assert.False(t, OutputHTML.IsAttachment())
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotTarget, gotBranch, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotTarget = r.URL.Query().Get("output-target")
		gotBranch = r.URL.Query().Get("branch")
		gotUser, _, _ = r.BasicAuth()
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	p, err := New(Config{URL: srv.URL, Username: "admin", Password: "password"}, nil)
	require.NoError(t, err)

	content, err := p.GenerateContent(context.Background(), ContentRequest{
		ReportName: "Branch Expected Cash Flow",
		OutputType: OutputPDF,
		Params:     map[string]string{"branch": "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/repos/:public:reports:Branch%20Expected%20Cash%20Flow.prpt/generatedContent", gotPath)
	assert.Equal(t, "pageable/pdf", gotTarget)
	assert.Equal(t, "1", gotBranch)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "application/pdf", content.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), content.Body)
}

func TestGenerateContent_ContentTypeFollowsOutputType(t *testing.T) {
	tests := []struct {
		name       string
		serverType string
		outputType OutputType
		wantType   string
	}{
		{name: "csv with charset", serverType: "text/csv;charset=UTF-8", outputType: OutputCSV, wantType: "application/x-msdownload"},
		{name: "xls as octet stream", serverType: "application/octet-stream", outputType: OutputXLS, wantType: "application/vnd.ms-excel"},
		{name: "html with charset", serverType: "text/html;charset=UTF-8", outputType: OutputHTML, wantType: "text/html"},
		{name: "no header", serverType: "", outputType: OutputPDF, wantType: "application/pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.serverType == "" {
					w.Header()["Content-Type"] = nil
				} else {
					w.Header().Set("Content-Type", tt.serverType)
				}
				_, _ = w.Write([]byte("a,b"))
			}))
			defer srv.Close()

			p, err := New(Config{URL: srv.URL}, nil)
			require.NoError(t, err)

			content, err := p.GenerateContent(context.Background(), ContentRequest{ReportName: "r", OutputType: tt.outputType})
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, content.ContentType)
		})
	}
}

func TestGenerateContent_ParamsCannotOverrideTarget(t *testing.T) {
	var gotTargets []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTargets = r.URL.Query()["output-target"]
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	p, err := New(Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = p.GenerateContent(context.Background(), ContentRequest{
		ReportName: "r",
		OutputType: OutputPDF,
		Params:     map[string]string{"output-target": "table/html;page-mode=stream", "branch": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pageable/pdf"}, gotTargets)
}

func TestGenerateContent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "report not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := New(Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = p.GenerateContent(context.Background(), ContentRequest{ReportName: "missing"})
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}

func TestGenerateContent_Validation(t *testing.T) {
	p, err := New(Config{URL: "http://pentaho.local"}, nil)
	require.NoError(t, err)

	_, err = p.GenerateContent(context.Background(), ContentRequest{})
	assert.ErrorIs(t, err, ErrReportNameRequired)

	_, err = p.GenerateContent(context.Background(), ContentRequest{ReportName: "r", OutputType: "DOCX"})
	assert.ErrorIs(t, err, ErrUnsupportedOutputType)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.ErrorIs(t, err, ErrURLRequired)
}
