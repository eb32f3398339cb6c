package web

import "net/http"

var noCacheHeaders = [...][2]string{
	{"Cache-Control", "no-store, no-cache, must-revalidate, max-age=0"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

func setNoCache(h http.Header) {
	for _, kv := range noCacheHeaders {
		h.Set(kv[0], kv[1])
	}
}

// NoCache wraps next so the no-cache headers are set last, right before the
// header block goes out, overriding anything next wrote to those fields.
func NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Covers handlers that finish without writing.
		setNoCache(w.Header())
		next.ServeHTTP(&noCacheWriter{ResponseWriter: w}, r)
	})
}

type noCacheWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *noCacheWriter) WriteHeader(code int) {
	setNoCache(w.Header())
	if code >= http.StatusOK || code == http.StatusSwitchingProtocols {
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *noCacheWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(p)
}

func (w *noCacheWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
