package converter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"subfix/internal/errdefs"
	"subfix/internal/fileutil"
	"subfix/internal/logging"
)

// ConvertBatch discovers subtitle files under sourceDirectory and converts
// each one. Per-file failures are recorded in a ledger and reported once at
// the end as a *errdefs.BatchError, unless FailFast is set, in which case the
// first failure aborts the run. Successfully converted files are never
// cleaned up, even when the batch as a whole is reported as failed.
func (c *Converter) ConvertBatch(ctx context.Context, sourceDirectory string, opts BatchOptions) error {
	if !fileutil.IsDir(sourceDirectory) {
		return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate source",
			fmt.Sprintf("source directory %q must be an existing directory", sourceDirectory), nil)
	}
	sourceDirectory, err := filepath.Abs(sourceDirectory)
	if err != nil {
		return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate source",
			fmt.Sprintf("cannot resolve %q", sourceDirectory), err)
	}

	targetDir := strings.TrimSpace(opts.TargetDir)
	if targetDir != "" {
		targetDir, err = filepath.Abs(targetDir)
		if err != nil {
			return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate target",
				fmt.Sprintf("cannot resolve %q", opts.TargetDir), err)
		}
		// Converting into a populated subdirectory of the source would feed
		// previous output back into the discovery walk. Checked once, against
		// direct children only, before any conversion starts.
		if strings.HasPrefix(targetDir, sourceDirectory) && fileutil.DirectoryContainsFiles(targetDir) {
			return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate target",
				fmt.Sprintf("target directory %q resides in source directory %q but already contains files", targetDir, sourceDirectory), nil)
		}
		if fileutil.IsRegularFile(targetDir) {
			return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate target",
				fmt.Sprintf("target directory %q is a file", targetDir), nil)
		}
	}

	// One batch at a time per source tree: the resolver trusts the live
	// filesystem for collision checks, so concurrent runs must not interleave.
	lock, lockPath, err := acquireBatchLock(sourceDirectory)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	sequenceNaming := opts.SequenceNaming ||
		targetDir != "" ||
		strings.TrimSpace(opts.FixedBaseName) != ""

	slugLength := 0
	switch {
	case opts.SlugLength != nil:
		if *opts.SlugLength < 0 {
			return errdefs.Wrap(errdefs.ErrValidation, "converter", "validate options",
				fmt.Sprintf("slug length %d must not be negative", *opts.SlugLength), nil)
		}
		slugLength = *opts.SlugLength
	case !sequenceNaming:
		slugLength = c.cfg.Conversion.SlugLength
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = c.cfg.Conversion.Extensions
	}

	files, err := c.Discover(sourceDirectory, extensions)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := c.logger.With(logging.String(logging.FieldRunID, runID))
	started := time.Now()
	logger.Info("starting batch conversion",
		logging.Args(
			logging.String("source_dir", sourceDirectory),
			logging.String("target_dir", targetDir),
			logging.Int("files", len(files)),
			logging.Bool("sequence_naming", sequenceNaming),
			logging.Int("slug_length", slugLength),
			logging.String("lock", lockPath),
		)...)

	failed := make(map[string]string)
	converted := 0
	for i, file := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if len(failed) > 0 {
				break
			}
			return ctxErr
		}

		suffix := opts.Suffix
		if sequenceNaming {
			suffix = joinDotted(strconv.Itoa(i+1), opts.Suffix)
		}

		_, err := c.ConvertFile(ctx, file, Request{
			TargetDir:      targetDir,
			TargetBaseName: opts.FixedBaseName,
			Suffix:         suffix,
			SourceEncoding: opts.SourceEncoding,
			TargetEncoding: opts.TargetEncoding,
			SlugLength:     slugLength,
		})
		if err == nil {
			converted++
			continue
		}
		if !errdefs.IsDomain(err) {
			err = errdefs.Wrap(errdefs.ErrEncoding, "converter", "convert file",
				fmt.Sprintf("unexpected failure on %q", file), err)
		}
		if opts.FailFast {
			return err
		}
		logger.Warn("file failed to convert",
			logging.Args(logging.String(logging.FieldFile, file), logging.Error(err))...)
		failed[file] = err.Error()
	}

	if len(failed) > 0 {
		logger.Error("batch completed with failures",
			logging.Args(
				logging.Int("converted", converted),
				logging.Int("failed", len(failed)),
				logging.Duration("elapsed", time.Since(started)),
			)...)
		return &errdefs.BatchError{Failed: failed}
	}

	logger.Info("batch completed",
		logging.Args(
			logging.Int("converted", converted),
			logging.Duration("elapsed", time.Since(started)),
		)...)
	return nil
}

// Discover recursively collects the regular files under sourceDirectory
// whose names end with one of the accepted extensions, case-insensitively.
// Symbolic links are followed; duplicates collapse and the result is sorted
// so batch sequence numbers are stable between runs.
func (c *Converter) Discover(sourceDirectory string, extensions []string) ([]string, error) {
	if !fileutil.IsDir(sourceDirectory) {
		return nil, errdefs.Wrap(errdefs.ErrNotFound, "converter", "discover files",
			fmt.Sprintf("directory %q does not exist", sourceDirectory), nil)
	}

	lowered := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext = strings.ToLower(strings.TrimSpace(ext)); ext != "" {
			lowered = append(lowered, ext)
		}
	}

	seen := make(map[string]struct{})
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			info, err := os.Stat(path) // follows symlinks
			if err != nil {
				continue
			}
			if info.IsDir() {
				walk(path)
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
			name := strings.ToLower(entry.Name())
			for _, ext := range lowered {
				if strings.HasSuffix(name, ext) {
					seen[path] = struct{}{}
					break
				}
			}
		}
	}
	walk(sourceDirectory)

	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)
	return files, nil
}

func acquireBatchLock(sourceDirectory string) (*flock.Flock, string, error) {
	sum := sha256.Sum256([]byte(sourceDirectory))
	lockPath := filepath.Join(os.TempDir(), fmt.Sprintf("subfix-%x.lock", sum[:8]))
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, "", errdefs.Wrap(errdefs.ErrConfiguration, "converter", "acquire batch lock",
			fmt.Sprintf("cannot lock %q", lockPath), err)
	}
	if !locked {
		return nil, "", errdefs.Wrap(errdefs.ErrConfiguration, "converter", "acquire batch lock",
			fmt.Sprintf("another batch run already holds %q for this source directory", lockPath), nil)
	}
	return lock, lockPath, nil
}

// joinDotted concatenates the non-empty parts with a dot.
func joinDotted(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + "." + end
	case start != "":
		return start
	default:
		return end
	}
}
