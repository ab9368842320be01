package images

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadImageURLManquante(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/download-image", nil)
	recorder := httptest.NewRecorder()

	DownloadImage(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"URL manquante"}`, recorder.Body.String())
}

func TestDownloadImageDistanteIntrouvable(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer remote.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/download-image?url="+remote.URL+"/absente.jpg", nil)
	recorder := httptest.NewRecorder()

	DownloadImage(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Impossible de récupérer l'image"}`, recorder.Body.String())
}

func TestDownloadImageSertLaPieceJointe(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer remote.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/download-image?url="+remote.URL+"/chantier.jpg&filename=chantier.jpg", nil)
	recorder := httptest.NewRecorder()

	DownloadImage(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/jpeg", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="chantier.jpg"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, payload, recorder.Body.Bytes())
}

func TestDownloadImageNomParDefautDepuisLeContentType(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png"))
	}))
	defer remote.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/download-image?url="+remote.URL+"/logo", nil)
	recorder := httptest.NewRecorder()

	DownloadImage(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="image.png"`, recorder.Header().Get("Content-Disposition"))
}

func TestDownloadImageSertDepuisLeCache(t *testing.T) {
	calls := 0
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("image"))
	}))
	defer remote.Close()

	url := remote.URL + "/equipe.jpg"
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/download-image?url="+url, nil)
		recorder := httptest.NewRecorder()
		DownloadImage(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	assert.Equal(t, 1, calls)
}
