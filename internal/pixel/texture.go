package pixel

// Texture is the opaque reference embedded in image geometry nodes:
// either a path resolvable by the consuming visualiser, or a raw
// width/height/byte-buffer triple. The bytes are never decoded or
// validated here; the consumer owns their interpretation.
type Texture struct {
	Path   string `json:"path,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Data   []byte `json:"data,omitempty"`
}

// PathTexture references a texture by consumer-resolvable path.
func PathTexture(path string) Texture {
	return Texture{Path: path}
}

// RawTexture wraps an in-memory byte buffer.
func RawTexture(width, height int, data []byte) Texture {
	return Texture{Width: width, Height: height, Data: data}
}

// IsRaw reports whether the texture carries in-memory bytes rather than a
// path reference. A zero-value texture is neither.
func (t Texture) IsRaw() bool {
	return t.Path == "" && len(t.Data) > 0
}
