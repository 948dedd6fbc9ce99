package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

const (
	// Full-range observation lists run to tens of kilobytes of repetitive
	// JSON; responses below this size are not worth compressing.
	compressionMinSize = 1024
	compressionLevel   = 6
)

// CompressionMiddleware gzips responses for clients that accept it.
func CompressionMiddleware(next http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressionMinSize),
		gzhttp.CompressionLevel(compressionLevel),
	)
	if err != nil {
		return gzhttp.GzipHandler(next)
	}
	return wrapper(next)
}
