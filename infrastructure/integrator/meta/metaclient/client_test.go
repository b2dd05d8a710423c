package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-dashboard-api/internal/config"
	"github.com/vfg2006/meta-ads-dashboard-api/internal/domain"
)

func newTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{
		Meta: config.Meta{
			BaseURL:   baseURL,
			Version:   "v20.0",
			AppID:     "app-id",
			AppSecret: "app-secret",
		},
		Graph: config.Graph{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			PageLimit:   2,
			MaxPages:    10,
		},
	}
	cfg.Normalize()
	return cfg
}

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return ctx.Err()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*MetaClient, *sleepRecorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := &sleepRecorder{}
	client := NewClient(newTestConfig(server.URL), WithRetryPolicy(RetryPolicy{
		MaxAttempts: 3,
		IsRetryable: IsRetryableStatus,
		Backoff:     func(int) time.Duration { return 0 },
	}))
	client.sleep = recorder.sleep

	return client, recorder
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	})

	resp, err := client.Do(context.Background(), Request{Path: "/me"}, "token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_ReturnsLastResponseAfterExhaustion(t *testing.T) {
	var calls atomic.Int32
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"Service temporarily unavailable","code":2}}`))
	})

	resp, err := client.Do(context.Background(), Request{Path: "/me"}, "token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "temporarily unavailable")
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, recorder.delays, 2)
}

func TestDo_NonRetryableStatusReturnsImmediately(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	resp, err := client.Do(context.Background(), Request{Path: "/me"}, "token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_HonorsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), Request{Path: "/me"}, "token")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, recorder.delays)
}

func TestDo_SendsBearerAndForm(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v20.0/123", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		assert.Equal(t, "PAUSED", form.Get("status"))

		w.Write([]byte(`{"success":true}`))
	})

	result, err := client.UpdateStatus(context.Background(), "secret-token", "123", "PAUSED")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDo_TransportErrorWrapsRequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	recorder := &sleepRecorder{}
	client := NewClient(newTestConfig(baseURL))
	client.sleep = recorder.sleep

	_, err := client.Do(context.Background(), Request{Path: "/me"}, "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Len(t, recorder.delays, 2)
}

func TestCreateCampaign_RetryOnlyWhenNotProcessed(t *testing.T) {
	campaign := domain.CreateCampaignRequest{Name: "Black Friday", Objective: "OUTCOME_SALES"}

	tests := []struct {
		name      string
		statuses  []int
		wantCalls int32
		wantErr   bool
	}{
		{name: "erro 500 não é repetido", statuses: []int{http.StatusInternalServerError, http.StatusOK}, wantCalls: 1, wantErr: true},
		{name: "erro 503 não é repetido", statuses: []int{http.StatusServiceUnavailable, http.StatusOK}, wantCalls: 1, wantErr: true},
		{name: "429 é repetido", statuses: []int{http.StatusTooManyRequests, http.StatusOK}, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				status := tt.statuses[len(tt.statuses)-1]
				if int(n) <= len(tt.statuses) {
					status = tt.statuses[n-1]
				}
				if status != http.StatusOK {
					w.WriteHeader(status)
					w.Write([]byte(`{"error":{"message":"Service temporarily unavailable","code":2}}`))
					return
				}
				w.Write([]byte(`{"id":"120"}`))
			})

			result, err := client.CreateCampaign(context.Background(), "token", "1", campaign)

			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "120", result.ID)
		})
	}
}

func TestCreateCampaign_TransportErrorIsNotRepeated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	recorder := &sleepRecorder{}
	client := NewClient(newTestConfig(baseURL))
	client.sleep = recorder.sleep

	_, err := client.CreateCampaign(context.Background(), "token", "1", domain.CreateCampaignRequest{Name: "x", Objective: "OUTCOME_SALES"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Empty(t, recorder.delays)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(newTestConfig(server.URL), WithRetryPolicy(RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return time.Hour },
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, Request{Path: "/me"}, "token")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_RejectsForeignHost(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	_, err := client.Do(context.Background(), Request{Path: "https://evil.example.com/v20.0/me"}, "token")
	assert.Error(t, err)
}

func TestExponentialBackoff(t *testing.T) {
	backoff := ExponentialBackoff(time.Second, func() float64 { return 0 })
	assert.Equal(t, time.Second, backoff(0))
	assert.Equal(t, 2*time.Second, backoff(1))
	assert.Equal(t, 4*time.Second, backoff(2))

	withJitter := ExponentialBackoff(time.Second, func() float64 { return 0.5 })
	assert.Equal(t, 1050*time.Millisecond, withJitter(0))
	assert.Equal(t, 2100*time.Millisecond, withJitter(1))
}

func TestIsRetryableStatus(t *testing.T) {
	for _, status := range []int{429, 500, 502, 503, 504} {
		assert.True(t, IsRetryableStatus(status), status)
	}
	for _, status := range []int{200, 400, 401, 403, 404} {
		assert.False(t, IsRetryableStatus(status), status)
	}
}

func TestFetchAllPages(t *testing.T) {
	var serverURL string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("after") {
		case "":
			fmt.Fprintf(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"cursors":{"after":"c1"},"next":"%s/v20.0/act_1/insights?after=c1"}}`, serverURL)
		case "c1":
			fmt.Fprintf(w, `{"data":[{"id":"3"}],"paging":{"cursors":{"after":"c2"}}}`)
		}
	})
	serverURL = client.Cfg.Meta.BaseURL

	items, err := client.FetchAllPages(context.Background(), "/act_1/insights", "token", url.Values{"level": {"ad"}}, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.JSONEq(t, `{"id":"3"}`, string(items[2]))
}

func TestFetchAllPages_StopsAtMaxPages(t *testing.T) {
	var calls atomic.Int32
	var serverURL string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		fmt.Fprintf(w, `{"data":[{"id":"%d"}],"paging":{"next":"%s/v20.0/act_1/ads?after=%d"}}`, n, serverURL, n)
	})
	serverURL = client.Cfg.Meta.BaseURL

	items, err := client.FetchAllPages(context.Background(), "/act_1/ads", "token", nil, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetInsights_ErrorCarriesGraphDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
	})

	_, err := client.GetInsights(context.Background(), "token", "1", domain.LevelCampaign, domain.InsightFilters{})
	require.Error(t, err)

	graphErr, ok := AsGraphError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, graphErr.StatusCode)
	assert.False(t, graphErr.Transient)
	assert.True(t, graphErr.IsTokenExpired())
	assert.Equal(t, "Invalid OAuth access token", graphErr.Detail.Message)
}

func TestGetInsights_HalfOpenRangeIsRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be sent")
	})

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.GetInsights(context.Background(), "token", "1", domain.LevelAd, domain.InsightFilters{Since: &since})
	assert.True(t, errors.Is(err, domain.ErrHalfOpenRange))
}
