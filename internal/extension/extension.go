package extension

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qawatake/rwd/internal/derrors"
	"github.com/qawatake/rwd/internal/verbose"
)

// Prefix is the file name prefix of catalog provider executables.
const Prefix = "rwd-"

// Manager manages rwd catalog provider plugins
type Manager struct{}

// NewManager creates a new extension manager
func NewManager() *Manager {
	return &Manager{}
}

// FindExtensions discovers all rwd plugins in the PATH
func (m *Manager) FindExtensions() ([]Extension, error) {
	extensions := make([]Extension, 0)

	pathEnv := os.Getenv("PATH")
	paths := strings.Split(pathEnv, string(os.PathListSeparator))

	seen := make(map[string]bool)

	for _, path := range paths {
		if path == "" {
			continue
		}
		files, err := os.ReadDir(path)
		if err != nil {
			continue // Skip directories that can't be read
		}

		for _, file := range files {
			name := file.Name()
			if !strings.HasPrefix(name, Prefix) {
				continue
			}

			extName := strings.TrimPrefix(name, Prefix)
			if extName == "" || seen[extName] {
				continue
			}

			fullPath := filepath.Join(path, name)
			if info, err := os.Stat(fullPath); err == nil && isExecutable(info) {
				seen[extName] = true
				extensions = append(extensions, Extension{
					Name: extName,
					Path: fullPath,
				})
			}
		}
	}

	sort.Slice(extensions, func(i, j int) bool {
		return extensions[i].Name < extensions[j].Name
	})

	return extensions, nil
}

// Find returns the plugin with the given name.
func (m *Manager) Find(name string) (Extension, error) {
	extensions, err := m.FindExtensions()
	if err != nil {
		return Extension{}, fmt.Errorf("failed to find extensions: %v", err)
	}
	for _, ext := range extensions {
		if ext.Name == name {
			return ext, nil
		}
	}
	return Extension{}, fmt.Errorf("extension '%s' not found", name)
}

// Extension represents an rwd catalog provider
type Extension struct {
	Name string
	Path string
}

// Source names the extension in diagnostics.
func (e Extension) Source() string {
	return "plugin:" + e.Name
}

// Catalog runs `<plugin> catalog` and returns its stdout, which must be a
// recipe catalog YAML stream.
func (e Extension) Catalog(ctx context.Context) (_ []byte, err error) {
	defer derrors.Wrapf(&err, "plugin %s", e.Name)

	verbose.Printf("Executing extension: %s catalog\n", e.Path)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Path, "catalog")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// isExecutable checks if the file is executable
func isExecutable(info os.FileInfo) bool {
	mode := info.Mode()
	return mode.IsRegular() && (mode.Perm()&0111) != 0
}
