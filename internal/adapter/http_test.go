package adapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestPost(t *testing.T) {
	t.Run("rate limited attempt is retried with the full body", func(t *testing.T) {
		payload := `{"payload":"full"}`
		var bodies []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			bodies = append(bodies, string(b))
			if len(bodies) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		c := NewHTTPClient(5 * time.Second)
		resp, err := c.Post(context.Background(), srv.URL, "application/json", nil, bytes.NewReader([]byte(payload)))
		require.NoError(t, err)
		assert.Equal(t, []byte("ok"), resp)

		require.Len(t, bodies, 2)
		assert.Equal(t, payload, bodies[0])
		assert.Equal(t, payload, bodies[1])
	})

	t.Run("non-2xx status is not retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		c := NewHTTPClient(5 * time.Second)
		_, err := c.Post(context.Background(), srv.URL, "application/json", nil, bytes.NewReader([]byte("{}")))
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("raw body"))
	}))
	defer srv.Close()

	c := NewHTTPClient(5 * time.Second)
	data, err := c.GetBytes(context.Background(), srv.URL, map[string]string{"Authorization": "Bearer token"})
	require.NoError(t, err)
	assert.Equal(t, []byte("raw body"), data)
}
