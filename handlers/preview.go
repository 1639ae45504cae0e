package handlers

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/ZacxDev/shellgen/redirects"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SetupPreviewRouter serves an emitted output directory the way the hosting
// platforms would: existing files first, then the explicit route table read from
// the emitted _redirects file, then the fallback document.
func SetupPreviewRouter(outDir string, logger *zap.Logger) (*mux.Router, error) {
	table, err := os.ReadFile(filepath.Join(outDir, redirects.NetlifyFile))
	if err != nil {
		return nil, errors.Wrap(err, "reading route table, run build first")
	}

	rules, err := redirects.ParseNetlify(string(table))
	if err != nil {
		return nil, err
	}

	root := http.Dir(outDir)
	router := mux.NewRouter()
	router.Use(requestLogger(logger))
	router.NotFoundHandler = Custom404Handler(root)

	for _, rule := range rules.Rules {
		router.Handle(rule.Source, fileHandler(root, rule.Destination, http.StatusOK)).Methods(http.MethodGet, http.MethodHead)
	}

	router.PathPrefix("/").Handler(fallbackHandler(root, rules.Fallback)).Methods(http.MethodGet, http.MethodHead)

	return router, nil
}

// Custom404Handler serves the emitted 404 shell when there is one.
func Custom404Handler(root http.FileSystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !serveFile(w, r, root, "/404.html", http.StatusNotFound) {
			http.NotFound(w, r)
		}
	})
}

func fileHandler(root http.FileSystem, name string, status int) http.Handler {
	notFound := Custom404Handler(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !serveFile(w, r, root, name, status) {
			notFound.ServeHTTP(w, r)
		}
	})
}

func fallbackHandler(root http.FileSystem, fallback string) http.Handler {
	toFallback := fileHandler(root, fallback, http.StatusOK)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if serveFile(w, r, root, r.URL.Path, http.StatusOK) {
			return
		}
		toFallback.ServeHTTP(w, r)
	})
}

// serveFile writes a regular file from root and reports whether it existed.
// Directories are never listed.
func serveFile(w http.ResponseWriter, r *http.Request, root http.FileSystem, name string, status int) bool {
	f, err := root.Open(path.Clean("/" + name))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	if status == http.StatusOK {
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		return true
	}

	if ctype := contentType(info.Name()); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = io.Copy(w, f)
	}
	return true
}

func contentType(name string) string {
	if filepath.Ext(name) == ".html" {
		return "text/html; charset=utf-8"
	}
	return ""
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Debug("preview request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
			next.ServeHTTP(w, r)
		})
	}
}
