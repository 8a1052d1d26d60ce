package worksheet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mirela/brainplay/internal/worksheet"
)

func TestGenerate(t *testing.T) {
	var received worksheet.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>worksheet</body></html>"))
	}))
	defer server.Close()

	client := worksheet.New(server.URL, time.Second)
	document, contentType, err := client.Generate(context.Background(), worksheet.Request{
		Topic:            "addition",
		NumProblems:      10,
		IncludeAnswerKey: true,
		GradeLevel:       3,
	})

	require.NoError(t, err)
	assert.Contains(t, string(document), "worksheet")
	assert.Contains(t, contentType, "text/html")
	assert.Equal(t, "addition", received.Topic)
	assert.Equal(t, 10, received.NumProblems)
	assert.True(t, received.IncludeAnswerKey)
}

func TestGenerate_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := worksheet.New(server.URL, time.Second)
	_, _, err := client.Generate(context.Background(), worksheet.Request{Topic: "addition", NumProblems: 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
