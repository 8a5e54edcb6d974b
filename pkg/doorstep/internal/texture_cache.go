package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 64

// TextTexture is a rendered string and its pixel size.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps rendered text textures, evicting the least recently used.
// A screen redraws the same labels every frame, so most lookups hit.
type TextureCache struct {
	textures map[string]TextTexture
	order    []string // tracks use order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]TextTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func textKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)
}

// Text returns the texture for text in font and color, rendering it on a miss.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (TextTexture, error) {
	key := textKey(font, text, color)
	if t, ok := c.get(key); ok {
		return t, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, err
	}

	t := TextTexture{Texture: texture, W: surface.W, H: surface.H}
	c.set(key, t)
	return t, nil
}

func (c *TextureCache) get(key string) (TextTexture, bool) {
	t, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return t, exists
}

func (c *TextureCache) set(key string, t TextTexture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, exists := c.textures[oldest]; exists {
		t.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.Texture.Destroy()
	}
	c.textures = make(map[string]TextTexture)
	c.order = c.order[:0]
}
