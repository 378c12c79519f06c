package advisory

import (
	"Spendwise-Backend/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdvisory_MockWhenUnconfigured(t *testing.T) {
	s := &advisoryService{httpClient: &http.Client{Timeout: time.Second}}

	result, err := s.GenerateAdvisory(context.Background(), "Milk 3.50\nTOTAL 5.70")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Advice)
	assert.NotEmpty(t, result.SavingsTip)
	assert.Equal(t, "Milk 3.50\nTOTAL 5.70", result.InputSummary)

	// deterministic
	again, err := s.GenerateAdvisory(context.Background(), "Milk 3.50\nTOTAL 5.70")
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestGenerateAdvisory_LiveEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"track your grocery spending weekly"}}]}`))
	}))
	defer srv.Close()

	s := &advisoryService{
		apiURL:     srv.URL,
		apiKey:     "test-key",
		model:      "gpt-4o-mini",
		httpClient: srv.Client(),
	}

	result, err := s.GenerateAdvisory(context.Background(), "TOTAL 5.70")
	require.NoError(t, err)
	assert.Equal(t, "track your grocery spending weekly", result.Advice)
	assert.Equal(t, "TOTAL 5.70", result.InputSummary)
}

func TestGenerateAdvisory_EndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	s := &advisoryService{
		apiURL:     srv.URL,
		httpClient: srv.Client(),
	}

	_, err := s.GenerateAdvisory(context.Background(), "TOTAL 5.70")
	assert.ErrorIs(t, err, domain.ErrAdvisoryGenerationFailed)
}

func TestGenerateAdvisory_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	s := &advisoryService{
		apiURL:     srv.URL,
		httpClient: srv.Client(),
	}

	_, err := s.GenerateAdvisory(context.Background(), "TOTAL 5.70")
	assert.ErrorIs(t, err, domain.ErrAdvisoryGenerationFailed)
}

func TestSummarizeInput(t *testing.T) {
	assert.Equal(t, "No text provided", summarizeInput("  "))

	long := strings.Repeat("a", 150)
	summary := summarizeInput(long)
	assert.Len(t, summary, 103)
	assert.True(t, strings.HasSuffix(summary, "..."))

	assert.Equal(t, "short", summarizeInput("short"))
}
