package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
)

// SiteHandler serves the pre-built static site. Paths that do not name a
// file fall back to index.html so client-side routes resolve.
type SiteHandler struct {
	root  http.Dir
	index string
	files http.Handler
}

// NewSiteHandler serves files from dir.
func NewSiteHandler(dir string) *SiteHandler {
	root := http.Dir(dir)
	return &SiteHandler{
		root:  root,
		index: filepath.Join(dir, "index.html"),
		files: http.FileServer(root),
	}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ok, err := h.exists(path.Clean("/" + r.URL.Path))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if ok {
		h.files.ServeHTTP(w, r)
		return
	}
	http.ServeFile(w, r, h.index)
}

// exists reports whether name is a file, or a directory with its own
// index.html. Directories are never listed.
func (h *SiteHandler) exists(name string) (bool, error) {
	info, err := h.stat(name)
	if err != nil || info == nil {
		return false, err
	}
	if !info.IsDir() {
		return true, nil
	}
	info, err = h.stat(path.Join(name, "index.html"))
	if err != nil || info == nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// stat returns nil info when name does not exist.
func (h *SiteHandler) stat(name string) (fs.FileInfo, error) {
	f, err := h.root.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Stat()
}
