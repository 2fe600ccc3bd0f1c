package sketch

import (
	"github.com/gogpu/sketch/imageload"
	"github.com/gogpu/sketch/surface"
)

// defaultImageCacheSize is the number of decoded images the default loader
// keeps, so contexts that redraw the same sources fetch them once.
const defaultImageCacheSize = 64

// defaultLoader serves image commands of contexts created without
// WithImageLoader.
var defaultLoader = imageload.New(imageload.WithCacheSize(defaultImageCacheSize))

// Option configures a Context during creation.
//
// Example:
//
//	sc, err := sketch.New(doc, "board",
//	    sketch.WithConfig(cfg),
//	    sketch.WithImageLoader(imageload.New(imageload.WithHTTPClient(client))),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	config Config
	loader surface.ImageLoader
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		config: DefaultConfig(),
		loader: defaultLoader,
	}
}

// WithConfig sets the binding policy and style defaults.
// Zero fields of cfg fall back to DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg.withDefaults()
	}
}

// WithImageLoader sets the loader used to fetch image sources.
// A nil loader keeps the default, which is shared by all contexts.
func WithImageLoader(l surface.ImageLoader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}
