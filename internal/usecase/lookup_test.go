package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ghlookup/internal/domain"
)

// mockFetcher is a mock implementation of the github.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchAccount(ctx context.Context, handle string) (*domain.Record, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *mockFetcher) FetchRepository(ctx context.Context, repoPath string) (*domain.Record, error) {
	args := m.Called(ctx, repoPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newTestUseCase(f *mockFetcher) *LookupUseCase {
	uc := NewLookupUseCase(f, time.UTC)
	uc.renderDelay = 0
	return uc
}

func TestLookupUseCase_Execute(t *testing.T) {
	testCases := []struct {
		name       string
		req        LookupRequest
		setupMock  func(m *mockFetcher)
		wantText   string
		wantNotice string
	}{
		{
			name: "followers success",
			req:  LookupRequest{Mode: domain.ModeFollowers, Input: "octocat"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchAccount", mock.Anything, "octocat").
					Return(&domain.Record{Followers: intPtr(42), CreatedAt: strPtr("2011-01-25T18:44:36Z")}, nil)
			},
			wantText: "Followers: 42\nJoined on: 25/1/2011",
		},
		{
			name: "profile URL resolves to handle",
			req:  LookupRequest{Mode: domain.ModeFollowers, Input: " https://github.com/octocat/ "},
			setupMock: func(m *mockFetcher) {
				m.On("FetchAccount", mock.Anything, "octocat").
					Return(&domain.Record{Followers: intPtr(1), CreatedAt: strPtr("2020-02-02T00:00:00Z")}, nil)
			},
			wantText: "Followers: 1\nJoined on: 2/2/2020",
		},
		{
			name: "repository stats with zero values",
			req:  LookupRequest{Mode: domain.ModeRepoStats, Input: "https://github.com/foo/bar"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchRepository", mock.Anything, "foo/bar").
					Return(&domain.Record{Forks: intPtr(0), StargazersCount: intPtr(0)}, nil)
			},
			wantText: "Forks: 0\nStars: 0",
		},
		{
			name: "repository date",
			req:  LookupRequest{Mode: domain.ModeRepoDate, Input: "https://github.com/foo/bar"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchRepository", mock.Anything, "foo/bar").
					Return(&domain.Record{CreatedAt: strPtr("2015-03-09T00:00:00Z")}, nil)
			},
			wantText: "Created on: 9/3/2015",
		},
		{
			name:       "invalid username makes no call",
			req:        LookupRequest{Mode: domain.ModeFollowers, Input: "bad input!"},
			setupMock:  func(m *mockFetcher) {},
			wantNotice: domain.NoticeInvalidUsername,
		},
		{
			name:       "invalid repository URL makes no call",
			req:        LookupRequest{Mode: domain.ModeRepoDate, Input: "https://github.com/foo/bar/"},
			setupMock:  func(m *mockFetcher) {},
			wantNotice: domain.NoticeInvalidRepoURL,
		},
		{
			name: "http failure",
			req:  LookupRequest{Mode: domain.ModeRepoDate, Input: "https://github.com/foo/bar"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchRepository", mock.Anything, "foo/bar").
					Return(nil, &domain.HTTPError{StatusCode: 404, URL: "repos/foo/bar"})
			},
			wantNotice: domain.NoticeFetchFailed,
		},
		{
			name: "missing followers field",
			req:  LookupRequest{Mode: domain.ModeFollowers, Input: "octocat"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchAccount", mock.Anything, "octocat").
					Return(&domain.Record{CreatedAt: strPtr("2011-01-25T18:44:36Z")}, nil)
			},
			wantNotice: domain.NoticeUnknownUsername,
		},
		{
			name: "missing stars field",
			req:  LookupRequest{Mode: domain.ModeRepoStats, Input: "https://github.com/foo/bar"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchRepository", mock.Anything, "foo/bar").
					Return(&domain.Record{Forks: intPtr(3)}, nil)
			},
			wantNotice: domain.NoticeRepoNotFound,
		},
		{
			name: "transport failure",
			req:  LookupRequest{Mode: domain.ModeRepoStats, Input: "https://github.com/foo/bar"},
			setupMock: func(m *mockFetcher) {
				m.On("FetchRepository", mock.Anything, "foo/bar").
					Return(nil, &domain.FetchError{Op: "get repos/foo/bar", Err: errors.New("connection refused")})
			},
			wantNotice: domain.NoticeFetchFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			tc.setupMock(fetcher)
			uc := newTestUseCase(fetcher)

			resp, err := uc.Execute(context.Background(), tc.req)

			if tc.wantNotice != "" {
				assert.Error(t, err)
				assert.Nil(t, resp)
				assert.Equal(t, tc.wantNotice, domain.Notice(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantText, resp.Result.Text())
				assert.NotEmpty(t, resp.CycleID)
			}

			fetcher.AssertExpectations(t)
			if len(fetcher.ExpectedCalls) == 0 {
				fetcher.AssertNotCalled(t, "FetchAccount", mock.Anything, mock.Anything)
				fetcher.AssertNotCalled(t, "FetchRepository", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestLookupUseCase_ExecuteWaitsRenderDelay(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepository", mock.Anything, "foo/bar").
		Return(&domain.Record{Forks: intPtr(1), StargazersCount: intPtr(2)}, nil)

	uc := NewLookupUseCase(fetcher, time.UTC)
	uc.renderDelay = 50 * time.Millisecond

	started := time.Now()
	resp, err := uc.Execute(context.Background(), LookupRequest{Mode: domain.ModeRepoStats, Input: "https://github.com/foo/bar"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.Equal(t, "Forks: 1\nStars: 2", resp.Result.Text())
}

func TestLookupUseCase_ExecuteContextDone(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchAccount", mock.Anything, "octocat").
		Return(&domain.Record{Followers: intPtr(1), CreatedAt: strPtr("2011-01-25T18:44:36Z")}, nil)

	uc := NewLookupUseCase(fetcher, time.UTC)
	assert.Equal(t, RenderDelay, uc.RenderDelay())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := uc.Execute(ctx, LookupRequest{Mode: domain.ModeFollowers, Input: "octocat"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.NoticeFetchFailed, domain.Notice(err))
}

func TestLookupUseCase_FetchRoutesByMode(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchAccount", mock.Anything, "octocat").Return(&domain.Record{}, nil).Once()
	fetcher.On("FetchRepository", mock.Anything, "foo/bar").Return(&domain.Record{}, nil).Twice()
	uc := newTestUseCase(fetcher)

	_, err := uc.Fetch(context.Background(), domain.Target{Mode: domain.ModeFollowers, Identifier: "octocat"})
	require.NoError(t, err)
	_, err = uc.Fetch(context.Background(), domain.Target{Mode: domain.ModeRepoDate, Identifier: "foo/bar"})
	require.NoError(t, err)
	_, err = uc.Fetch(context.Background(), domain.Target{Mode: domain.ModeRepoStats, Identifier: "foo/bar"})
	require.NoError(t, err)

	fetcher.AssertExpectations(t)
}
