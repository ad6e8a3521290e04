package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/encode"
	"github.com/cfoust/gmk/pkg/gmk"
	"github.com/cfoust/gmk/pkg/normalize"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Deobfuscate normalize.Mode
	FixEvents   bool
	Parallel    bool
	// 0 means GOMAXPROCS
	Workers int
	// Zero means the time the conversion starts
	Timestamp time.Time
	// Transforms run before normalization, so anything they add is renamed
	// along with the rest of an obfuscated graph.
	Transforms []assets.Transform
	// AfterNormalize runs once names are final, right before encoding.
	AfterNormalize []assets.Transform
}

type Result struct {
	Bytes  int64
	Digest uint64
	Report normalize.Report
}

// Write runs the transforms, the normalization pass and the post-normalization
// transforms over g, then writes the project file to out. g is modified in
// place.
func Write(ctx context.Context, out io.Writer, g *assets.GameAssets, opts Options) (Result, error) {
	result := Result{}

	err := g.Validate()
	if err != nil {
		return result, err
	}

	err = assets.ApplyTransforms(g, opts.Transforms...)
	if err != nil {
		return result, err
	}

	result.Report = normalize.Run(g, normalize.Options{
		Mode:      opts.Deobfuscate,
		FixEvents: opts.FixEvents,
	})

	err = assets.ApplyTransforms(g, opts.AfterNormalize...)
	if err != nil {
		return result, err
	}

	timestamp := opts.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	progress := encode.NewProgress()
	digest := xxhash.New()
	result.Bytes, err = gmk.Write(ctx, io.MultiWriter(out, digest), g, gmk.Options{
		Parallel:  opts.Parallel,
		Workers:   opts.Workers,
		Timestamp: timestamp,
		Progress:  progress,
	})
	if err != nil {
		return result, err
	}
	result.Digest = digest.Sum64()

	done, _ := progress.Counts()
	log.Info().Msgf("encoded %d assets (%d bytes, digest %016x)", done, result.Bytes, result.Digest)
	return result, nil
}

// WriteFile writes the project file next to path and renames it into place
// only once it is complete. A failed conversion leaves no file behind.
func WriteFile(ctx context.Context, path string, g *assets.GameAssets, opts Options) (Result, error) {
	if message, ok := ExtensionWarning(path, g.Version); ok {
		log.Warn().Msg(message)
	}

	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create output file: %w", err)
	}
	tempPath := file.Name()

	result, err := Write(ctx, file, g, opts)
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tempPath, path)
	}

	if err != nil {
		os.Remove(tempPath)
		return result, err
	}

	log.Info().Msgf("wrote %s", path)
	return result, nil
}

func otherVersion(v assets.Version) assets.Version {
	if v == assets.GameMaker81 {
		return assets.GameMaker80
	}
	return assets.GameMaker81
}

// ExtensionWarning returns a warning when path has the extension of the other
// format revision, which the authoring tool would refuse to open.
func ExtensionWarning(path string, v assets.Version) (string, bool) {
	extension := strings.TrimPrefix(filepath.Ext(path), ".")
	other := otherVersion(v)
	if !strings.EqualFold(extension, other.Extension()) {
		return "", false
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf(
		"output file %s is a .%s file but the game is %s; use %s.%s instead or %s will not open it",
		path,
		extension,
		v,
		base,
		v.Extension(),
		v,
	), true
}

// DefaultOutputPath replaces the extension of input with the one expected
// for v.
func DefaultOutputPath(input string, v assets.Version) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + v.Extension()
}
