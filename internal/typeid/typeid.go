package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixPublisher = "pub"
	PrefixSession   = "sess"
	PrefixFrame     = "frame"
	PrefixClient    = "client"
	PrefixTexture   = "tex"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewPublisherID() string { return New(PrefixPublisher) }
func NewSessionID() string   { return New(PrefixSession) }
func NewFrameID() string     { return New(PrefixFrame) }
func NewClientID() string    { return New(PrefixClient) }
func NewTextureID() string   { return New(PrefixTexture) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
