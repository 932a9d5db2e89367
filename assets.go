package cardtable

import (
	"context"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"
)

// Loader produces the image for an asset key. Load may block; the cache
// calls it off the game goroutine.
type Loader interface {
	Load(key string) (*ebiten.Image, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(key string) (*ebiten.Image, error)

// Load calls f(key).
func (f LoaderFunc) Load(key string) (*ebiten.Image, error) {
	return f(key)
}

// Future is the eventual result of resolving one asset key. It completes
// exactly once; after that Image and Err never change.
type Future struct {
	key  string
	done chan struct{}
	img  *ebiten.Image
	err  error
}

// Key returns the asset key this future resolves.
func (f *Future) Key() string {
	return f.key
}

// Ready reports whether the future has completed, without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed on completion.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Image returns the loaded image, or nil if not ready or failed.
func (f *Future) Image() *ebiten.Image {
	if !f.Ready() {
		return nil
	}
	return f.img
}

// Err returns the load error, or nil if not ready or succeeded.
func (f *Future) Err() error {
	if !f.Ready() {
		return nil
	}
	return f.err
}

// Wait blocks until the future completes or ctx is done.
func (f *Future) Wait(ctx context.Context) (*ebiten.Image, error) {
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future) complete(img *ebiten.Image, err error) {
	f.img, f.err = img, err
	close(f.done)
}

// AssetCache resolves asset keys to images asynchronously, one load per key.
// The first Resolve for a key starts the load; every later call, in flight
// or finished, returns the same Future. Failures are cached too: there is
// no retry. Safe for concurrent use.
type AssetCache struct {
	loader Loader

	mu      sync.Mutex
	entries map[string]*Future
}

// NewAssetCache creates a cache backed by loader.
func NewAssetCache(loader Loader) *AssetCache {
	return &AssetCache{
		loader:  loader,
		entries: make(map[string]*Future),
	}
}

// Resolve returns the future for key, starting the load on first use.
func (c *AssetCache) Resolve(key string) *Future {
	c.mu.Lock()
	if f, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return f
	}
	f := &Future{key: key, done: make(chan struct{})}
	c.entries[key] = f
	c.mu.Unlock()

	go c.load(f)
	return f
}

func (c *AssetCache) load(f *Future) {
	defer func() {
		if p := recover(); p != nil {
			f.complete(nil, fmt.Errorf("load %q: panic: %v: %w", f.key, p, ErrResourceUnavailable))
		}
	}()
	img, err := c.loader.Load(f.key)
	if err == nil && img == nil {
		err = fmt.Errorf("loader returned no image")
	}
	if err != nil {
		f.complete(nil, fmt.Errorf("load %q: %w: %w", f.key, ErrResourceUnavailable, err))
		return
	}
	f.complete(img, nil)
}

// Len returns the number of keys ever resolved.
func (c *AssetCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Preload resolves every key and waits for all of them. It returns the first
// load error, or ctx's error if ctx ends first.
func (c *AssetCache) Preload(ctx context.Context, keys ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		f := c.Resolve(key)
		g.Go(func() error {
			_, err := f.Wait(ctx)
			return err
		})
	}
	return g.Wait()
}

// FSLoader decodes "<key><Ext>" from FS. Any format registered with the
// image package decodes; PNG is always registered.
type FSLoader struct {
	FS  fs.FS
	Dir string // optional directory prefix inside FS
	Ext string // defaults to ".png"
}

// Load opens and decodes the file for key.
func (l FSLoader) Load(key string) (*ebiten.Image, error) {
	ext := l.Ext
	if ext == "" {
		ext = ".png"
	}
	name := path.Join(l.Dir, key+ext)
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
