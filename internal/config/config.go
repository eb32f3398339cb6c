package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// Port is fixed; devserve reads no flags or environment.
const Port = 9091

type Config struct {
	// Host is empty to bind every interface.
	Host string
	Port int
	Root string
}

// Load returns the listener configuration for a document root that has
// already been resolved with ResolveRoot.
func Load(root string) Config {
	return Config{
		Host: "",
		Port: Port,
		Root: root,
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL is the address printed for the developer to open.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

func (c Config) Banner() string {
	return fmt.Sprintf("Serving at %s (no-cache)", c.URL())
}

// ResolveRoot returns the absolute directory containing sourceFile, the
// entry point's path as recorded at build time. When that directory is not
// present on this host the directory of the running executable is used.
func ResolveRoot(sourceFile string) (string, error) {
	if sourceFile != "" && filepath.IsAbs(sourceFile) {
		dir := filepath.Dir(sourceFile)
		if isDir(dir) {
			return dir, nil
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("absolute root: %w", err)
	}
	return dir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
