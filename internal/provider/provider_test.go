package provider

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memberadmin/internal/domain"
	"memberadmin/internal/eventbus"
)

const sampleMembers = `[
  {"id":"1","name":"Aaron Miles","email":"aaron@mailinator.com","role":"member"},
  {"id":"2","name":"Aishwarya Naik","email":"aishwarya@mailinator.com","role":"member"},
  {"id":"3","name":"Arvind Kumar","email":"arvind@mailinator.com","role":"admin"}
]`

func TestHTTPProviderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleMembers)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())
	records, err := p.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Arvind Kumar", records[2].Name)
	assert.Equal(t, "admin", records[2].ExtraString("role"))
}

func TestHTTPProviderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL, srv.Client()).Fetch(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestHTTPProviderParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not":"an array"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPProvider(srv.URL, srv.Client()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse members")
}

func TestFileProviderFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleMembers), 0644))

	records, err := NewFileProvider(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = NewFileProvider(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeEmptyArray(t *testing.T) {
	records, err := Decode(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNewDispatchesOnSource(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &HTTPProvider{}, p)
	assert.Equal(t, DefaultSource, p.Source())

	p, err = New("https://example.com/members.json")
	require.NoError(t, err)
	assert.IsType(t, &HTTPProvider{}, p)

	p, err = New("s3://bucket/path/members.json")
	require.NoError(t, err)
	require.IsType(t, &S3Provider{}, p)
	assert.Equal(t, "s3://bucket/path/members.json", p.Source())

	p, err = New("./testdata/members.json")
	require.NoError(t, err)
	assert.IsType(t, &FileProvider{}, p)

	p, err = New("file:///tmp/members.json")
	require.NoError(t, err)
	require.IsType(t, &FileProvider{}, p)
	assert.Equal(t, "/tmp/members.json", p.Source())

	_, err = New("s3://bucket-only")
	assert.Error(t, err)

	_, err = New("ftp://example.com/members.json")
	assert.Error(t, err)
}

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func TestS3ProviderFetch(t *testing.T) {
	client := new(mockS3Client)
	client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == "admin" && *in.Key == "members.json"
	})).Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(sampleMembers)),
	}, nil).Once()

	records, err := NewS3Provider("admin", "members.json", client).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
	client.AssertExpectations(t)
}

func TestS3ProviderFetchError(t *testing.T) {
	client := new(mockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied")).Once()

	_, err := NewS3Provider("admin", "members.json", client).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://admin/members.json")
}

type stubProvider struct {
	mu      sync.Mutex
	calls   int
	records []domain.Member
	err     error
}

func (p *stubProvider) Fetch(ctx context.Context) ([]domain.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.records, p.err
}

func (p *stubProvider) Source() string { return "stub" }

func TestLoaderLoadsExactlyOnce(t *testing.T) {
	stub := &stubProvider{records: []domain.Member{{ID: "1"}, {ID: "2"}}}
	l := NewLoader(stub, nil, LoaderOptions{})

	records, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = l.Load(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Equal(t, 1, stub.calls)
}

func TestLoaderFailurePublishesEvent(t *testing.T) {
	bus := eventbus.New()
	failed := make(chan eventbus.LoadFailedEvent, 1)
	bus.Subscribe(eventbus.EventLoadFailed, func(e eventbus.DomainEvent) {
		failed <- e.(eventbus.LoadFailedEvent)
	})

	boom := errors.New("connection refused")
	l := NewLoader(&stubProvider{err: boom}, bus, LoaderOptions{})

	records, err := l.Load(context.Background())
	assert.Nil(t, records)
	assert.ErrorIs(t, err, boom)

	bus.Close()
	select {
	case e := <-failed:
		assert.Equal(t, "stub", e.Source)
		assert.ErrorIs(t, e.Err, boom)
	default:
		t.Fatal("LoadFailedEvent was not published")
	}
}

func TestLoaderPassesDuplicatesThroughByDefault(t *testing.T) {
	stub := &stubProvider{records: []domain.Member{{ID: "1"}, {ID: "1"}, {Name: "no id"}}}

	records, err := NewLoader(stub, nil, LoaderOptions{}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoaderStrictIDsDropsInvalid(t *testing.T) {
	stub := &stubProvider{records: []domain.Member{
		{ID: "1", Name: "first"},
		{ID: "2"},
		{ID: "1", Name: "repeat"},
		{Name: "no id"},
	}}

	records, err := NewLoader(stub, nil, LoaderOptions{StrictIDs: true}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "2", records[1].ID)
}

func TestValidate(t *testing.T) {
	report := Validate([]domain.Member{{ID: "1"}, {ID: "2"}, {ID: "1"}, {ID: "1"}, {}})
	assert.Equal(t, 1, report.MissingIDs)
	assert.Equal(t, []string{"1"}, report.Duplicates)
	assert.Len(t, report.Valid, 2)
	assert.Len(t, report.Warnings, 2)

	clean := Validate([]domain.Member{{ID: "1"}})
	assert.Empty(t, clean.Warnings)
}
