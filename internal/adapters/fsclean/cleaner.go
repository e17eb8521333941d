// Package fsclean implements the filesystem cleanup adapter. Every
// operation treats "already gone" as success: a missing directory, path, or
// install manifest is a valid end state, not an error.
package fsclean

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cubuild/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Cleaner implements ports.Cleaner.
type Cleaner struct {
	logger ports.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean removes the contents of each directory, keeping the directory
// itself. Independent directories are cleaned concurrently; step-level
// orchestration stays sequential above this call.
func (c *Cleaner) Clean(ctx context.Context, dirs []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.cleanDir(dir)
			return nil
		})
	}
	return g.Wait()
}

func (c *Cleaner) cleanDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("skipping clean of " + dir + ": " + err.Error())
		}
		return
	}

	c.logger.Info("cleaning " + dir)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			// Deletion failures are tolerated; the next build will either
			// overwrite or fail with a clearer message.
			c.logger.Warn("could not remove " + path + ": " + err.Error())
		}
	}
}

// Remove deletes the given files or directories outright.
func (c *Cleaner) Remove(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.RemoveAll(path); err != nil {
			c.logger.Warn("could not remove " + path + ": " + err.Error())
		}
	}
	return nil
}

// Uninstall deletes every path listed in each cmake install manifest. A
// manifest that does not exist means that step was never installed.
func (c *Cleaner) Uninstall(ctx context.Context, manifests []string) error {
	for _, manifest := range manifests {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.uninstallManifest(manifest)
	}
	return nil
}

func (c *Cleaner) uninstallManifest(manifest string) {
	f, err := os.Open(manifest) //nolint:gosec // manifest paths come from the fixed step table
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("skipping manifest " + manifest + ": " + err.Error())
		}
		return
	}
	defer func() { _ = f.Close() }()

	removed := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				c.logger.Warn("could not remove " + path + ": " + err.Error())
			}
			continue
		}
		removed++
	}
	if err := scanner.Err(); err != nil {
		c.logger.Warn("reading manifest " + manifest + ": " + err.Error())
	}

	c.logger.Info(fmt.Sprintf("removed %d files listed in %s", removed, manifest))
}
