package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"reporting-srv/internal/model"
	"reporting-srv/internal/reporting"
	"reporting-srv/internal/reporting/repository"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/minio"
	"reporting-srv/pkg/pentaho"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) ResolveSQL(ctx context.Context, opts repository.ResolveSQLOptions) (string, error) {
	args := m.Called(ctx, opts)
	return args.String(0), args.Error(1)
}

func (m *mockRepo) GetReportType(ctx context.Context, reportName string) (string, error) {
	args := m.Called(ctx, reportName)
	return args.String(0), args.Error(1)
}

func (m *mockRepo) RunQuery(ctx context.Context, opts repository.QueryOptions) (model.GenericResultset, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.GenericResultset), args.Error(1)
}

func (m *mockRepo) StreamQuery(ctx context.Context, opts repository.StreamQueryOptions) error {
	return m.Called(ctx, opts).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetReportType(ctx context.Context, reportName string) (string, error) {
	args := m.Called(ctx, reportName)
	return args.String(0), args.Error(1)
}

func (m *mockCache) SaveReportType(ctx context.Context, opts repository.SaveReportTypeOptions) error {
	return m.Called(ctx, opts).Error(0)
}

func (m *mockCache) DeleteReportType(ctx context.Context, reportName string) error {
	return m.Called(ctx, reportName).Error(0)
}

func (m *mockCache) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type fakePentaho struct {
	got     pentaho.ContentRequest
	content *pentaho.Content
	err     error
}

func (f *fakePentaho) GenerateContent(_ context.Context, req pentaho.ContentRequest) (*pentaho.Content, error) {
	f.got = req
	return f.content, f.err
}

func (f *fakePentaho) HealthCheck(context.Context) error { return nil }

type fakeMinIO struct {
	minio.MinIO
	mu      sync.Mutex
	uploads []*minio.UploadRequest
}

func (f *fakeMinIO) UploadAsync(req *minio.UploadRequest, done func(*minio.FileInfo, error)) (string, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, req)
	f.mu.Unlock()
	done(&minio.FileInfo{}, nil)
	return "task-1", nil
}

var (
	sc    = model.Scope{UserID: "1", Username: "mifos"}
	input = reporting.ResultsetInput{
		ReportName:    "Office Transactions",
		ParameterType: model.ParameterTypeReport,
		Params:        map[string]string{"${officeId}": "2"},
	}
	resolveOpts = repository.ResolveSQLOptions{Name: "Office Transactions", ParameterType: model.ParameterTypeReport}
)

func str(s string) *string { return &s }

func newUseCase(repo *mockRepo, cache *mockCache, p pentaho.IPentaho, m minio.MinIO, cfg Config) *implUseCase {
	var c repository.CacheRepository
	if cache != nil {
		c = cache
	}
	uc := New(repo, c, p, m, log.NewNop(), cfg).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	return uc
}

// streamRows feeds headers and rows through the StreamQuery callbacks.
func streamRows(headers []model.ResultsetColumnHeader, rows ...model.ResultsetRow) func(mock.Arguments) {
	return func(args mock.Arguments) {
		opts := args.Get(1).(repository.StreamQueryOptions)
		_ = opts.OnHeader(headers)
		for _, r := range rows {
			_ = opts.OnRow(r)
		}
	}
}

func TestRetrieveGenericResultset(t *testing.T) {
	repo := &mockRepo{}
	want := model.GenericResultset{
		ColumnHeaders: []model.ResultsetColumnHeader{{ColumnName: "id", ColumnType: "INT8"}},
		Data:          []model.ResultsetRow{{Row: []*string{str("1")}}},
	}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).
		Return("select id from t where office_id = ${officeId} and user_id = ${currentUserId}", nil)
	repo.On("RunQuery", mock.Anything, repository.QueryOptions{
		SQL:  "select id from t where office_id = $1 and user_id = $2",
		Args: []any{"2", "1"},
	}).Return(want, nil)

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	got, err := uc.RetrieveGenericResultset(context.Background(), sc, input)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestRetrieveGenericResultset_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		repoErr error
		wantErr error
	}{
		{name: "report not found", repoErr: repository.ErrReportNotFound, wantErr: reporting.ErrReportNotFound},
		{name: "parameter not found", repoErr: repository.ErrParameterNotFound, wantErr: reporting.ErrParameterNotFound},
		{name: "invalid parameter type", repoErr: repository.ErrInvalidParameterType, wantErr: reporting.ErrInvalidParameterType},
		{name: "empty sql", sql: "", wantErr: reporting.ErrReportHasNoSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("ResolveSQL", mock.Anything, resolveOpts).Return(tt.sql, tt.repoErr)

			uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
			_, err := uc.RetrieveGenericResultset(context.Background(), sc, input)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "RunQuery", mock.Anything, mock.Anything)
		})
	}
}

func TestRetrieveGenericResultset_MissingParameter(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("select * from t where branch = ${branchId}", nil)

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	_, err := uc.RetrieveGenericResultset(context.Background(), sc, input)

	var missing *reporting.MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "branchId", missing.Name)
}

func TestRetrieveGenericResultset_QueryFailed(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("select 1", nil)
	repo.On("RunQuery", mock.Anything, mock.Anything).Return(model.GenericResultset{}, errors.New("syntax error"))

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	_, err := uc.RetrieveGenericResultset(context.Background(), sc, input)

	assert.ErrorIs(t, err, reporting.ErrQueryFailed)
}

func TestWithScopeParams_KeepsCallerValue(t *testing.T) {
	got := withScopeParams(sc, map[string]string{reporting.CurrentUserIDParam: "9"})
	assert.Equal(t, "9", got[reporting.CurrentUserIDParam])

	got = withScopeParams(model.Scope{}, nil)
	assert.NotContains(t, got, reporting.CurrentUserIDParam)
}

var exportHeaders = []model.ResultsetColumnHeader{
	{ColumnName: "id", ColumnType: "INT8"},
	{ColumnName: "name", ColumnType: "VARCHAR"},
}

func TestRetrieveReportCSV(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("select id, name from office", nil)
	repo.On("StreamQuery", mock.Anything, mock.Anything).
		Run(streamRows(exportHeaders,
			model.ResultsetRow{Row: []*string{str("1"), str("Head Office")}},
			model.ResultsetRow{Row: []*string{str("2"), nil}},
		)).
		Return(nil)

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	out, err := uc.RetrieveReportCSV(context.Background(), sc, input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, out(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name"}, {"1", "Head Office"}, {"2", ""}}, records)
}

func TestRetrieveReportCSV_ResolveFailsBeforeStreaming(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("", repository.ErrReportNotFound)

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	out, err := uc.RetrieveReportCSV(context.Background(), sc, input)

	assert.ErrorIs(t, err, reporting.ErrReportNotFound)
	assert.Nil(t, out)
}

func TestRetrieveReportCSV_StreamError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("select 1", nil)
	repo.On("StreamQuery", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	out, err := uc.RetrieveReportCSV(context.Background(), sc, input)
	require.NoError(t, err)

	assert.EqualError(t, out(&bytes.Buffer{}), "connection reset")
}

func TestRetrieveReportXLSX(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ResolveSQL", mock.Anything, resolveOpts).Return("select id, name from office", nil)
	repo.On("StreamQuery", mock.Anything, mock.Anything).
		Run(streamRows(exportHeaders, model.ResultsetRow{Row: []*string{str("1"), str("Head Office")}})).
		Return(nil)

	uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
	out, err := uc.RetrieveReportXLSX(context.Background(), sc, input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, out(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name"}, {"1", "Head Office"}}, rows)
}

func TestGetReportType(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		repo, cache := &mockRepo{}, &mockCache{}
		cache.On("GetReportType", mock.Anything, "Client Listing").Return("Pentaho", nil)

		uc := newUseCase(repo, cache, &fakePentaho{}, nil, Config{})
		got, err := uc.GetReportType(context.Background(), "Client Listing")

		require.NoError(t, err)
		assert.Equal(t, "Pentaho", got)
		repo.AssertNotCalled(t, "GetReportType", mock.Anything, mock.Anything)
	})

	t.Run("cache miss stores", func(t *testing.T) {
		repo, cache := &mockRepo{}, &mockCache{}
		cache.On("GetReportType", mock.Anything, "Client Listing").Return("", repository.ErrCacheMiss)
		repo.On("GetReportType", mock.Anything, "Client Listing").Return("Table", nil)
		cache.On("SaveReportType", mock.Anything, repository.SaveReportTypeOptions{
			ReportName: "Client Listing", ReportType: "Table", TTL: time.Minute,
		}).Return(nil)

		uc := newUseCase(repo, cache, &fakePentaho{}, nil, Config{ReportTypeTTL: time.Minute})
		got, err := uc.GetReportType(context.Background(), "Client Listing")

		require.NoError(t, err)
		assert.Equal(t, "Table", got)
		cache.AssertExpectations(t)
	})

	t.Run("cache error falls back", func(t *testing.T) {
		repo, cache := &mockRepo{}, &mockCache{}
		cache.On("GetReportType", mock.Anything, mock.Anything).Return("", errors.New("redis down"))
		cache.On("SaveReportType", mock.Anything, mock.Anything).Return(errors.New("redis down"))
		repo.On("GetReportType", mock.Anything, "Client Listing").Return("Table", nil)

		uc := newUseCase(repo, cache, &fakePentaho{}, nil, Config{})
		got, err := uc.GetReportType(context.Background(), "Client Listing")

		require.NoError(t, err)
		assert.Equal(t, "Table", got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetReportType", mock.Anything, "nope").Return("", repository.ErrReportNotFound)

		uc := newUseCase(repo, nil, &fakePentaho{}, nil, Config{})
		_, err := uc.GetReportType(context.Background(), "nope")

		assert.ErrorIs(t, err, reporting.ErrReportNotFound)
	})
}

func TestEvictReportTypes(t *testing.T) {
	cache := &mockCache{}
	cache.On("DeleteReportType", mock.Anything, "Client Listing").Return(nil)
	cache.On("DeleteAll", mock.Anything).Return(4, nil)

	uc := newUseCase(&mockRepo{}, cache, &fakePentaho{}, nil, Config{})

	n, err := uc.EvictReportTypes(context.Background(), reporting.EvictReportTypesInput{ReportName: "Client Listing"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = uc.EvictReportTypes(context.Background(), reporting.EvictReportTypesInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	noCache := newUseCase(&mockRepo{}, nil, &fakePentaho{}, nil, Config{})
	n, err = noCache.EvictReportTypes(context.Background(), reporting.EvictReportTypesInput{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessPentahoRequest(t *testing.T) {
	tests := []struct {
		name            string
		outputType      string
		content         *pentaho.Content
		wantContentType string
		wantDisposition string
	}{
		{
			name:            "pdf inline",
			outputType:      "PDF",
			content:         &pentaho.Content{OutputType: pentaho.OutputPDF, ContentType: "application/pdf", Body: []byte("%PDF")},
			wantContentType: "application/pdf",
		},
		{
			name:            "xls attachment",
			outputType:      "xls",
			content:         &pentaho.Content{OutputType: pentaho.OutputXLS, ContentType: "application/octet-stream", Body: []byte("xls")},
			wantContentType: "application/vnd.ms-excel",
			wantDisposition: "attachment;filename=ClientListing.xls",
		},
		{
			name:            "csv attachment",
			outputType:      "CSV",
			content:         &pentaho.Content{OutputType: pentaho.OutputCSV, ContentType: "text/csv;charset=UTF-8", Body: []byte("a,b")},
			wantContentType: "application/x-msdownload",
			wantDisposition: "attachment;filename=ClientListing.csv",
		},
		{
			name:            "default html",
			outputType:      "",
			content:         &pentaho.Content{OutputType: pentaho.OutputHTML, ContentType: "text/html", Body: []byte("<html/>")},
			wantContentType: "text/html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePentaho{content: tt.content}
			uc := newUseCase(&mockRepo{}, nil, p, nil, Config{})

			doc, err := uc.ProcessPentahoRequest(context.Background(), reporting.PentahoInput{
				ReportName: "Client Listing",
				OutputType: tt.outputType,
				Params:     map[string]string{"officeId": "1"},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantContentType, doc.ContentType)
			assert.Equal(t, tt.content.Body, doc.Body)
			assert.Equal(t, tt.wantDisposition, doc.Disposition)
			assert.Equal(t, "Client Listing", p.got.ReportName)
			assert.Equal(t, map[string]string{"officeId": "1"}, p.got.Params)
		})
	}
}

func TestProcessPentahoRequest_Errors(t *testing.T) {
	t.Run("unsupported output type", func(t *testing.T) {
		uc := newUseCase(&mockRepo{}, nil, &fakePentaho{}, nil, Config{})
		_, err := uc.ProcessPentahoRequest(context.Background(), reporting.PentahoInput{ReportName: "r", OutputType: "DOCX"})
		assert.ErrorIs(t, err, reporting.ErrUnsupportedOutputType)
	})

	t.Run("server error", func(t *testing.T) {
		p := &fakePentaho{err: &pentaho.RequestError{StatusCode: 500}}
		uc := newUseCase(&mockRepo{}, nil, p, nil, Config{})
		_, err := uc.ProcessPentahoRequest(context.Background(), reporting.PentahoInput{ReportName: "r", OutputType: "PDF"})
		assert.ErrorIs(t, err, reporting.ErrPentahoFailed)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("transport error", func(t *testing.T) {
		p := &fakePentaho{err: errors.New("dial tcp: refused")}
		uc := newUseCase(&mockRepo{}, nil, p, nil, Config{})
		_, err := uc.ProcessPentahoRequest(context.Background(), reporting.PentahoInput{ReportName: "r", OutputType: "PDF"})
		assert.ErrorIs(t, err, reporting.ErrPentahoFailed)
	})
}

func TestProcessPentahoRequest_Archives(t *testing.T) {
	p := &fakePentaho{content: &pentaho.Content{OutputType: pentaho.OutputPDF, ContentType: "application/pdf", Body: []byte("%PDF")}}
	m := &fakeMinIO{}
	uc := newUseCase(&mockRepo{}, nil, p, m, Config{ArchiveEnabled: true, ArchiveBucket: "reports"})

	_, err := uc.ProcessPentahoRequest(context.Background(), reporting.PentahoInput{ReportName: "Client Listing", OutputType: "PDF"})
	require.NoError(t, err)

	require.Len(t, m.uploads, 1)
	up := m.uploads[0]
	assert.Equal(t, "reports", up.BucketName)
	assert.True(t, strings.HasPrefix(up.ObjectName, "pentaho/Client_Listing/2024/03/05/"), up.ObjectName)
	assert.True(t, strings.HasSuffix(up.ObjectName, ".pdf"), up.ObjectName)
	assert.Equal(t, int64(4), up.Size)
	assert.Equal(t, "application/pdf", up.ContentType)
}

func TestNew_ArchiveDisabledWithoutBucket(t *testing.T) {
	uc := newUseCase(&mockRepo{}, nil, &fakePentaho{}, &fakeMinIO{}, Config{ArchiveEnabled: true})
	assert.False(t, uc.config.ArchiveEnabled)
}
