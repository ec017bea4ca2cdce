package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

func TestHTTPOracleRecommend(t *testing.T) {
	t.Parallel()
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(chatResponse(`{"action": "fold", "amount": 0}`)))
	}))
	defer srv.Close()

	o := NewHTTPOracle(HTTPConfig{URL: srv.URL, Model: "test-model", APIKey: "secret"})
	resp, err := o.Recommend(context.Background(), "advise me")
	require.NoError(t, err)
	assert.Equal(t, `{"action": "fold", "amount": 0}`, resp)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
}

func TestHTTPOracleErrorStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	o := NewHTTPOracle(HTTPConfig{URL: srv.URL, Model: "test-model"})
	_, err := o.Recommend(context.Background(), "advise me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestHTTPOracleEmptyContent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	o := NewHTTPOracle(HTTPConfig{URL: srv.URL, Model: "test-model"})
	_, err := o.Recommend(context.Background(), "advise me")
	require.Error(t, err)
}

func TestHTTPOracleRequiresModel(t *testing.T) {
	t.Parallel()
	o := NewHTTPOracle(HTTPConfig{URL: "http://localhost:0"})
	_, err := o.Recommend(context.Background(), "advise me")
	require.Error(t, err)
}
