package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgmanifest "github.com/goliatone/go-appmanifest/pkg/manifest"
)

// Loader implements pkgmanifest.Loader by delegating to file, fs.FS, or HTTP
// strategies and decoding the fetched document.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgmanifest.LoaderOptions) pkgmanifest.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the document behind the source and decodes it into a
// validated Manifest.
func (l *Loader) Load(ctx context.Context, src pkgmanifest.Source) (pkgmanifest.Manifest, error) {
	if src == nil {
		return pkgmanifest.Manifest{}, errors.New("manifest loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgmanifest.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgmanifest.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgmanifest.SourceKindURL:
		if !l.allowHTTP {
			return pkgmanifest.Manifest{}, errors.New("manifest loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("manifest loader: unsupported source kind")
	}
	if err != nil {
		return pkgmanifest.Manifest{}, err
	}

	return pkgmanifest.Decode(data)
}
