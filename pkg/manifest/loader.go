package manifest

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches a manifest document from a Source and decodes it. The
// concrete implementation lives in internal/manifest/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Manifest, error)
}

// LoaderOptions configure a loader before construction.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient, when set, is cloned and used for URL sources.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client when no
	// HTTPClient is supplied. URL loading stays disabled otherwise.
	AllowHTTPFallback bool

	// RequestTimeout bounds each HTTP fetch.
	RequestTimeout time.Duration
}
