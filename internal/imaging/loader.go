package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded source images so that encoding the same file
// with different component grids or regions does not decode it again.
//
// Entries are keyed by path and remember the file's size and modification
// time. Load stats the file on every call and reloads it when either has
// changed, so a cached placeholder never outlives an edited source image.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	img     image.Image
	format  string
	size    int64
	modTime time.Time
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the decoded image at path, from the cache when the file is
// unchanged since it was cached.
//
// Supported formats are PNG, JPEG, GIF, WebP, BMP and TIFF.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not in a supported image format
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (cacheEntry, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("failed to stat image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.size == stat.Size() && entry.modTime.Equal(stat.ModTime()) {
		return entry, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cacheEntry{}, fmt.Errorf("failed to decode image: %w", err)
	}

	entry = cacheEntry{img: img, format: format, size: stat.Size(), modTime: stat.ModTime()}

	c.mu.Lock()
	c.entries[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format reported by the decoder ("png", "jpeg", "gif",
	// "webp", "bmp" or "tiff").
	Format string `json:"format"`

	// Extension is the lower-cased file extension without the dot.
	Extension string `json:"extension"`

	// HasAlpha indicates whether the image type carries an alpha channel.
	// Blurhash ignores alpha; translucent pixels are encoded as if composited
	// over black.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// SuggestedComponents is a component grid matching the aspect ratio,
	// with 4 components along the longer side.
	SuggestedComponents [2]int `json:"suggested_components"`
}

// LoadImageInfo loads an image through the cache and describes it.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	bounds := entry.img.Bounds()

	hasAlpha := false
	switch entry.img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA, *image.Paletted:
		hasAlpha = true
	}

	x, y := SuggestComponents(bounds.Dx(), bounds.Dy())

	return &ImageInfo{
		Width:               bounds.Dx(),
		Height:              bounds.Dy(),
		Format:              entry.format,
		Extension:           strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		HasAlpha:            hasAlpha,
		FileSizeBytes:       entry.size,
		SuggestedComponents: [2]int{x, y},
	}, nil
}

// SuggestComponents picks a component grid that follows the aspect ratio of
// a width x height image: 4 along the longer side, at least 1 and at most 9
// along the shorter one.
func SuggestComponents(width, height int) (int, int) {
	const long = 4
	if width <= 0 || height <= 0 {
		return long, long
	}
	if width >= height {
		return long, clampComponents((long*height + width/2) / width)
	}
	return clampComponents((long*width + height/2) / height), long
}

func clampComponents(n int) int {
	return min(max(n, 1), 9)
}
