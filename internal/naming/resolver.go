package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"subfix/internal/errdefs"
	"subfix/internal/fileutil"
)

// Options control how a destination path is derived from a source file.
type Options struct {
	// TargetDir is the destination directory. Empty means "next to the
	// source file". Must be absolute when set.
	TargetDir string
	// BaseName replaces the source file's base name. The source extension is
	// always kept; an extension embedded here is treated as part of the base.
	BaseName string
	// Suffix is appended between base name and extension.
	Suffix string
	// SlugLength enables collision disambiguation when positive. Zero makes
	// a collision on the plain candidate fatal.
	SlugLength int
}

var unsafeNameChars = strings.NewReplacer(
	`\`, "-", `/`, "-", `*`, "-", `<`, "-", `>`, "-",
	`:`, "-", `"`, "-", `|`, "-", `?`, "-",
)

// NormalizeBaseName replaces filesystem-unsafe characters in a file base name
// with hyphens.
func NormalizeBaseName(name string) string {
	return unsafeNameChars.Replace(name)
}

// FileName assembles a destination file name from its pieces, joining the
// non-empty ones with dots: base[.slug][.suffix][.ext].
func FileName(base, slug, suffix, ext string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{base, slug, suffix, ext} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ".")
}

// Resolve computes an absolute destination path for sourcePath that does not
// exist on disk at resolution time. When the plain candidate is taken it
// tries a slugged candidate, then retries with a strictly longer slug until a
// free path is found. With SlugLength zero a taken plain candidate is fatal.
//
// Existence is checked against the live filesystem on every attempt, so a
// file written earlier in a batch changes what "free" means for later calls.
func Resolve(sourcePath string, opts Options) (string, error) {
	sourcePath = strings.TrimRight(sourcePath, `/\`)
	if !filepath.IsAbs(sourcePath) {
		return "", errdefs.Wrap(errdefs.ErrValidation, "naming", "resolve target",
			fmt.Sprintf("source path %q must be absolute", sourcePath), nil)
	}

	dir, base, ext := splitSourcePath(sourcePath)

	if opts.TargetDir != "" {
		targetDir := strings.TrimRight(opts.TargetDir, `/\`)
		if !filepath.IsAbs(targetDir) {
			return "", errdefs.Wrap(errdefs.ErrValidation, "naming", "resolve target",
				fmt.Sprintf("target directory %q must be absolute", targetDir), nil)
		}
		dir = targetDir
	}

	if name := NormalizeBaseName(opts.BaseName); strings.TrimSpace(name) != "" {
		base = name
	}

	slugLength := opts.SlugLength
	if slugLength < 0 {
		slugLength = 0
	}

	plain := filepath.Join(dir, FileName(base, "", opts.Suffix, ext))
	for {
		if !fileutil.PathExists(plain) {
			return plain, nil
		}
		if slugLength == 0 {
			return "", errdefs.Wrap(errdefs.ErrAlreadyExists, "naming", "resolve target",
				fmt.Sprintf("a file named %q already exists", plain), nil)
		}
		slugged := filepath.Join(dir, FileName(base, RandomSlug(slugLength), opts.Suffix, ext))
		if !fileutil.PathExists(slugged) {
			return slugged, nil
		}
		slugLength++
	}
}

// splitSourcePath decomposes a file path into directory, base name without
// extension, and extension. A lone leading dot counts as an extension
// separator, matching the dot-splitting name assembly used throughout.
func splitSourcePath(path string) (dir, base, ext string) {
	dir = filepath.Dir(path)
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return dir, name[:i], name[i+1:]
	}
	return dir, name, ""
}
