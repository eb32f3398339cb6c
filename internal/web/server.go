package web

import "net/http"

type Server struct {
	Dir string
}

// Handler serves Dir with http.FileServer and marks every response as
// uncacheable.
func (s *Server) Handler() http.Handler {
	return NoCache(http.FileServer(http.Dir(s.Dir)))
}
