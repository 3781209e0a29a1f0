package handlers

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterStatic serves / from index and any other /<path> from fsys, for GET and HEAD.
// Missing files answer 404 through the registered error handler.
func RegisterStatic(e *echo.Echo, fsys fs.FS, index string) {
	files := echo.StaticDirectoryHandler(fsys, false)
	root := echo.StaticFileHandler(index, fsys)
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		e.Add(method, "/*", files)
		e.Add(method, "/", root)
	}
}

// StaticIndexExists reports whether index is a regular file in fsys.
func StaticIndexExists(fsys fs.FS, index string) bool {
	info, err := fs.Stat(fsys, index)
	return err == nil && info.Mode().IsRegular()
}
