package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/flitsinc/devserve/internal/config"
	"github.com/flitsinc/devserve/internal/idgen"
	"github.com/flitsinc/devserve/internal/web"
)

func main() {
	_, source, _, _ := runtime.Caller(0)
	cfg, err := setup(source)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	if err := web.RegisterMIMETypes(); err != nil {
		log.Fatalf("mime types: %v", err)
	}

	listener, err := listen(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	if err := serve(listener, cfg); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}

// setup anchors the process at the directory holding source. It runs once,
// before the listener exists.
func setup(source string) (config.Config, error) {
	root, err := config.ResolveRoot(source)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve root: %w", err)
	}
	if err := os.Chdir(root); err != nil {
		return config.Config{}, fmt.Errorf("chdir: %w", err)
	}
	return config.Load(root), nil
}

// listen prints the banner once and then binds, so the line is out before
// the first connection can be accepted.
func listen(cfg config.Config, out io.Writer) (net.Listener, error) {
	fmt.Fprintln(out, cfg.Banner())
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", cfg.Addr(), err)
	}
	return ln, nil
}

func serve(listener net.Listener, cfg config.Config) error {
	log.Printf("devserve %s serving %s on %s", idgen.Instance(), cfg.Root, listener.Addr())
	httpServer := &http.Server{
		Handler: newHandler(cfg),
		// Send "OPTIONS *" through the handler chain so it gets the
		// no-cache headers too.
		DisableGeneralOptionsHandler: true,
	}
	return httpServer.Serve(listener)
}

func newHandler(cfg config.Config) http.Handler {
	webServer := &web.Server{Dir: cfg.Root}
	return web.LoggingMiddleware(webServer.Handler())
}
