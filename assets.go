package easel

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gogpu/gg"

	// Decoders for the formats a web host actually supplies.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// asset is one image load request, keyed by the source it was requested
// for. The done channel closes exactly once, after img and err are set.
// Keying by source is what guards against a late-arriving load overwriting
// a newer source: the canvas always looks up its current source string, so
// a stale load's result is simply never consulted.
type asset struct {
	src  string
	done chan struct{}
	img  *gg.ImageBuf
	err  error
}

// ready returns the decoded image if the load has completed successfully.
// A pending or failed load returns (nil, false); callers omit that layer.
func (a *asset) ready() (*gg.ImageBuf, bool) {
	if a == nil {
		return nil, false
	}
	select {
	case <-a.done:
		return a.img, a.err == nil
	default:
		return nil, false
	}
}

// wait blocks until the load settles and returns its error, if any.
func (a *asset) wait() error {
	<-a.done
	return a.err
}

// assetLoader resolves image sources asynchronously, once per source.
type assetLoader struct {
	mu     sync.Mutex
	cache  map[string]*asset
	client *http.Client

	// onLoad fires from the loader goroutine after a successful load, so
	// the owner can recomposite with the newly available layer.
	onLoad func(src string)
}

func newAssetLoader() *assetLoader {
	return &assetLoader{
		cache:  make(map[string]*asset),
		client: http.DefaultClient,
	}
}

// get returns the asset for src, starting a load if none is cached.
func (l *assetLoader) get(src string) *asset {
	if src == "" {
		return nil
	}
	l.mu.Lock()
	a, ok := l.cache[src]
	if !ok {
		a = &asset{src: src, done: make(chan struct{})}
		l.cache[src] = a
		go l.load(a)
	}
	l.mu.Unlock()
	return a
}

// invalidate evicts a cached source so the next get fetches it again.
func (l *assetLoader) invalidate(src string) {
	l.mu.Lock()
	delete(l.cache, src)
	l.mu.Unlock()
}

func (l *assetLoader) load(a *asset) {
	img, err := l.fetch(a.src)
	if err != nil {
		a.err = err
		close(a.done)
		Logger().Warn("easel: image load failed", "src", truncateSrc(a.src), "err", err)
		return
	}
	a.img = gg.ImageBufFromImage(img)
	close(a.done)
	if l.onLoad != nil {
		l.onLoad(a.src)
	}
}

// fetch resolves a source string: data URL, http(s) URL, or file path.
func (l *assetLoader) fetch(src string) (image.Image, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURL(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		resp, err := l.client.Get(src)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", src, resp.Status)
		}
		img, _, err := image.Decode(resp.Body)
		return img, err
	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		img, _, err := image.Decode(f)
		return img, err
	}
}

// decodeDataURL decodes a base64 data URL into an image.
func decodeDataURL(src string) (image.Image, error) {
	_, rest, ok := strings.Cut(src, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(rest)
	if err != nil {
		return nil, fmt.Errorf("malformed data URL payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

// truncateSrc keeps log lines readable when the source is a large data URL.
func truncateSrc(src string) string {
	const max = 64
	if len(src) <= max {
		return src
	}
	return src[:max] + "..."
}
