package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	path := ObjectPath("abc123", "chantiers", 2, "photo.jpg", now)
	assert.Equal(t, "clients/abc123/chantiers/1700000000000_2_photo.jpg", path)

	// Les séparateurs dans le nom d'origine ne créent pas de sous-dossiers.
	path = ObjectPath("abc123", "logo", 0, "../logo.png", now)
	assert.Equal(t, "clients/abc123/logo/1700000000000_0_.._logo.png", path)
}

func TestUploadBytesReturnsDownloadURL(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Query().Get("name")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{"downloadTokens": "jeton-123"})
	}))
	defer server.Close()

	t.Setenv(utils.STORAGE_API_URL, server.URL)
	t.Setenv(utils.STORAGE_BUCKET, "bucket-test")

	client := NewClient()
	url, err := client.UploadBytes(context.Background(), "clients/c1/logo/1_0_logo.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "clients/c1/logo/1_0_logo.png", gotPath)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, []byte("png-bytes"), gotBody)
	assert.Contains(t, url, "/v0/b/bucket-test/o/")
	assert.Contains(t, url, "alt=media")
	assert.Contains(t, url, "token=jeton-123")
}

func TestUploadBytesPropagatesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	t.Setenv(utils.STORAGE_API_URL, server.URL)
	t.Setenv(utils.STORAGE_BUCKET, "bucket-test")

	client := NewClient()
	_, err := client.UploadBytes(context.Background(), "clients/c1/logo/x.png", []byte("x"), "image/png")
	assert.Error(t, err)
}
