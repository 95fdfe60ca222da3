// Package filex writes key material to disk.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (relative paths are resolved against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// WriteKeyPair writes <name>.pub.pem (0644) and <name>.pem (0600) into dir
// and returns both paths. Existing files are not overwritten.
func WriteKeyPair(dir, name, publicPEM, privatePEM string) (pubPath, privPath string, err error) {
	dir, err = EnsureDir(dir)
	if err != nil {
		return "", "", err
	}

	pubPath = filepath.Join(dir, name+".pub.pem")
	privPath = filepath.Join(dir, name+".pem")

	if err := writeNew(privPath, []byte(privatePEM), 0o600); err != nil {
		return "", "", err
	}
	if err := writeNew(pubPath, []byte(publicPEM), 0o644); err != nil {
		_ = os.Remove(privPath)
		return "", "", err
	}

	return pubPath, privPath, nil
}

func writeNew(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
