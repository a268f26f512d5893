// Package packs discovers the deployable configuration packs inside the
// dotfiles repository.
package packs

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Discover resolves the configured pack names against the packs directory.
// Missing packs are an error: the pack list is fixed configuration, a
// typo there should not silently deploy less.
func Discover(fs types.FS, packsDir string, names []string, targets map[string]string) ([]types.Pack, error) {
	logger := logging.GetLogger("packs")

	var result []types.Pack
	for _, name := range names {
		path := filepath.Join(packsDir, name)
		info, err := fs.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPackNotFound, "pack %q not found in %s", name, packsDir)
		}
		if !info.IsDir() {
			return nil, errors.Newf(errors.ErrPackInvalid, "pack %q is not a directory", name)
		}

		pack := types.Pack{Name: name, Path: path, Target: targets[name]}
		logger.Debug().Str("pack", name).Str("path", path).Str("target", pack.Target).Msg("Discovered pack")
		result = append(result, pack)
	}
	return result, nil
}

// Files walks a pack and returns the relative paths of its regular files,
// sorted. Hidden VCS litter is skipped.
func Files(fs types.FS, pack types.Pack) ([]string, error) {
	var files []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read pack dir %s", dir)
		}
		for _, entry := range entries {
			if entry.Name() == ".git" || entry.Name() == ".DS_Store" {
				continue
			}
			full := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}
			rel, err := filepath.Rel(pack.Path, full)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to relativize %s", full)
			}
			files = append(files, rel)
		}
		return nil
	}
	if err := walk(pack.Path); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Fragments lists a pack's shell fragments with the given extension in
// sourcing order. Fragments use numeric prefixes (00-env.zsh, 10-aliases.zsh)
// so lexical order is load order.
func Fragments(fs types.FS, pack types.Pack, ext string) ([]string, error) {
	files, err := Files(fs, pack)
	if err != nil {
		return nil, err
	}
	var fragments []string
	for _, f := range files {
		if filepath.Dir(f) == "." && strings.HasSuffix(f, ext) {
			fragments = append(fragments, f)
		}
	}
	sort.Strings(fragments)
	return fragments, nil
}
