package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/magicniclus/admintrouvermonchantier/utils"
	"github.com/redis/go-redis/v9"
)

type imageCacheItem struct {
	data        []byte
	contentType string
	timestamp   time.Time
}

var (
	imageCache      = make(map[string]imageCacheItem)
	imageCacheMutex sync.RWMutex
	imageCacheTTL   = 1 * time.Hour
)

func cleanupImageCache() {
	for {
		time.Sleep(30 * time.Minute)
		now := time.Now()
		imageCacheMutex.Lock()
		for k, v := range imageCache {
			if now.Sub(v.timestamp) > imageCacheTTL {
				delete(imageCache, k)
			}
		}
		imageCacheMutex.Unlock()
	}
}

func init() {
	go cleanupImageCache()
}

func cachedImage(url string) ([]byte, string, bool) {
	imageCacheMutex.RLock()
	defer imageCacheMutex.RUnlock()
	item, ok := imageCache[url]
	if !ok || time.Since(item.timestamp) > imageCacheTTL {
		return nil, "", false
	}
	return item.data, item.contentType, true
}

func storeImage(url string, data []byte, contentType string) {
	imageCacheMutex.Lock()
	imageCache[url] = imageCacheItem{data: data, contentType: contentType, timestamp: time.Now()}
	imageCacheMutex.Unlock()
}

func redisClient() *redis.Client {
	redisURI := os.Getenv(utils.REDIS_URI)
	if redisURI == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil
	}
	return redis.NewClient(opts)
}

func sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// DownloadImage sert une image distante avec les en-têtes de téléchargement,
// pour que le navigateur du dashboard enregistre le fichier au lieu de
// l'afficher. Cache en mémoire, doublé de Redis quand REDIS_URI est présent.
func DownloadImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	filename := r.URL.Query().Get("filename")

	if imageURL == "" {
		sendError(w, http.StatusBadRequest, "URL manquante")
		return
	}

	data, contentType, ok := cachedImage(imageURL)
	if !ok {
		data, contentType, ok = imageFromRedis(r.Context(), imageURL)
	}
	if !ok {
		resp, err := http.Get(imageURL)
		if err != nil {
			log.Printf("[DownloadImage] fetch %s: %v", imageURL, err)
			sendError(w, http.StatusNotFound, "Impossible de récupérer l'image")
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			sendError(w, http.StatusNotFound, "Impossible de récupérer l'image")
			return
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("[DownloadImage] lecture %s: %v", imageURL, err)
			sendError(w, http.StatusInternalServerError, "Erreur serveur")
			return
		}

		contentType = resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		storeImage(imageURL, data, contentType)
		imageToRedis(r.Context(), imageURL, data, contentType)
	}

	if filename == "" {
		extension := "jpg"
		if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
			extension = parts[1]
		}
		filename = "image." + extension
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func imageFromRedis(ctx context.Context, imageURL string) ([]byte, string, bool) {
	rdb := redisClient()
	if rdb == nil {
		return nil, "", false
	}
	defer rdb.Close()

	values, err := rdb.HGetAll(ctx, "images:download:"+imageURL).Result()
	if err != nil || len(values) == 0 {
		return nil, "", false
	}
	return []byte(values["data"]), values["contentType"], true
}

func imageToRedis(ctx context.Context, imageURL string, data []byte, contentType string) {
	rdb := redisClient()
	if rdb == nil {
		return
	}
	defer rdb.Close()

	key := "images:download:" + imageURL
	if err := rdb.HSet(ctx, key, "data", data, "contentType", contentType).Err(); err != nil {
		log.Printf("[DownloadImage] redis set: %v", err)
		return
	}
	rdb.Expire(ctx, key, imageCacheTTL)
}
