// Package storage téléverse des objets vers le stockage cloud (API REST du
// bucket) et construit leurs URLs publiques de téléchargement.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
)

const defaultBaseURL = "https://firebasestorage.googleapis.com"

type Client struct {
	baseURL    string
	bucket     string
	httpClient *http.Client
}

func NewClient() *Client {
	baseURL := os.Getenv(utils.STORAGE_API_URL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		bucket:     os.Getenv(utils.STORAGE_BUCKET),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ObjectPath construit le chemin d'un objet image, préfixé par l'id client et
// la catégorie, horodaté pour que deux uploads ne puissent pas se chevaucher.
func ObjectPath(clientID, folder string, index int, filename string, now time.Time) string {
	return fmt.Sprintf("clients/%s/%s/%d_%d_%s", clientID, folder, now.UnixMilli(), index, sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "fichier"
	}
	return name
}

// UploadBytes envoie les octets à l'emplacement donné et renvoie l'URL
// publique de téléchargement de l'objet créé.
func (c *Client) UploadBytes(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	uploadURL := fmt.Sprintf("%s/v0/b/%s/o?name=%s", c.baseURL, c.bucket, url.QueryEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("création requête upload: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload %s: statut %d: %s", path, resp.StatusCode, string(body))
	}

	result := struct {
		DownloadTokens string `json:"downloadTokens"`
	}{}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("décodage réponse upload: %w", err)
	}

	return c.downloadURL(path, result.DownloadTokens), nil
}

func (c *Client) downloadURL(path, token string) string {
	u := fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media", c.baseURL, c.bucket, url.PathEscape(path))
	if token != "" {
		u += "&token=" + token
	}
	return u
}
