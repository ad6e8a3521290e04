package gmk

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/encode"
	gmkio "github.com/cfoust/gmk/pkg/gmk/io"

	"github.com/rs/zerolog/log"
)

const Magic uint32 = 1234321

const (
	sectionVersion     uint32 = 800
	extensionsVersion  uint32 = 700
	libraryInitVersion uint32 = 500
	roomOrderVersion   uint32 = 700
)

type Options struct {
	Parallel bool
	// 0 means GOMAXPROCS
	Workers int
	// Stamped into every last-changed field. Fixed for the whole run so
	// the output is reproducible.
	Timestamp time.Time
	Progress  *encode.Progress
}

// SectionError names the part of the file that could not be written.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("failed writing %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

type writer struct {
	version assets.Version
	stamp   float64
	opts    Options
	g       *assets.GameAssets
}

type section struct {
	name  string
	write func(ctx context.Context, p *gmkio.Buffer) error
}

func list[T any](w *writer, name string, slots []assets.Slot[T], fn encode.ItemFunc[T]) section {
	return section{
		name: name,
		write: func(ctx context.Context, p *gmkio.Buffer) error {
			log.Info().Msgf("writing %d %s", len(slots), name)

			p.PutUint(sectionVersion)
			data, err := encode.List(ctx, name, slots, fn, encode.Options{
				Parallel: w.opts.Parallel,
				Workers:  w.opts.Workers,
				Compress: true,
				Progress: w.opts.Progress,
			})
			if err != nil {
				return err
			}
			*p = append(*p, data...)
			return nil
		},
	}
}

func (w *writer) sections() []section {
	g := w.g
	return []section{
		{"header", w.writeHeader},
		{"settings", w.writeSettings},
		list(w, "triggers", g.Triggers, w.trigger),
		{"trigger timestamp", w.writeStamp},
		{"constants", w.writeConstants},
		list(w, "sounds", g.Sounds, w.sound),
		list(w, "sprites", g.Sprites, w.sprite),
		list(w, "backgrounds", g.Backgrounds, w.background),
		list(w, "paths", g.Paths, w.path),
		list(w, "scripts", g.Scripts, w.script),
		list(w, "fonts", g.Fonts, w.font),
		list(w, "timelines", g.Timelines, w.timeline),
		list(w, "objects", g.Objects, w.object),
		list(w, "rooms", g.Rooms, w.room),
		{"room editor metadata", w.writeEditorMetadata},
		{"included files", w.writeIncludedFiles},
		{"extensions", w.writeExtensions},
		{"game information", w.writeGameInformation},
		{"library init code", w.writeLibraryInit},
		{"room order", w.writeRoomOrder},
		{"resource tree", w.writeTree},
	}
}

func (w *writer) writeHeader(ctx context.Context, p *gmkio.Buffer) error {
	err := p.Put(
		Magic,
		uint32(w.version),
		w.g.GameID,
		[16]byte(w.g.GUID),
	)
	return err
}

func (w *writer) writeSettings(ctx context.Context, p *gmkio.Buffer) error {
	body, err := w.settings(&w.g.Settings, w.g.Icon)
	if err != nil {
		return err
	}

	p.PutUint(uint32(w.version))
	return p.PutBlock(body)
}

func (w *writer) writeStamp(ctx context.Context, p *gmkio.Buffer) error {
	p.PutFloat(w.stamp)
	return nil
}

func (w *writer) writeConstants(ctx context.Context, p *gmkio.Buffer) error {
	log.Info().Msgf("writing %d constants", len(w.g.Constants))

	p.PutUint(sectionVersion)
	p.PutUint(uint32(len(w.g.Constants)))
	for _, constant := range w.g.Constants {
		err := p.Put(constant.Name, constant.Expression)
		if err != nil {
			return err
		}
	}
	p.PutFloat(w.stamp)
	return nil
}

func (w *writer) writeEditorMetadata(ctx context.Context, p *gmkio.Buffer) error {
	p.PutInt(w.g.LastInstanceID)
	p.PutInt(w.g.LastTileID)
	return nil
}

func (w *writer) writeIncludedFiles(ctx context.Context, p *gmkio.Buffer) error {
	files := w.g.IncludedFiles
	log.Info().Msgf("writing %d included files", len(files))

	p.PutUint(sectionVersion)
	p.PutUint(uint32(len(files)))
	for i := range files {
		body, err := w.includedFile(&files[i])
		if err != nil {
			return fmt.Errorf("included file %q: %w", files[i].FileName, err)
		}

		err = p.PutBlock(body)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeExtensions(ctx context.Context, p *gmkio.Buffer) error {
	p.PutUint(extensionsVersion)
	p.PutUint(uint32(len(w.g.Extensions)))
	for _, extension := range w.g.Extensions {
		err := p.PutString(extension.Name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeGameInformation(ctx context.Context, p *gmkio.Buffer) error {
	body, err := w.gameInformation(&w.g.HelpDialog)
	if err != nil {
		return err
	}

	p.PutUint(gameInfoVersion)
	return p.PutBlock(body)
}

func (w *writer) writeLibraryInit(ctx context.Context, p *gmkio.Buffer) error {
	p.PutUint(libraryInitVersion)
	p.PutUint(uint32(len(w.g.LibraryInitStrings)))
	for _, code := range w.g.LibraryInitStrings {
		err := p.PutString(code)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeRoomOrder(ctx context.Context, p *gmkio.Buffer) error {
	p.PutUint(roomOrderVersion)
	p.PutUint(uint32(len(w.g.RoomOrder)))
	for _, room := range w.g.RoomOrder {
		p.PutInt(room)
	}
	return nil
}

func (w *writer) writeTree(ctx context.Context, p *gmkio.Buffer) error {
	for _, node := range Tree(w.g) {
		err := node.write(p)
		if err != nil {
			return err
		}
	}
	return nil
}

// Write encodes the whole project file to out, one section at a time, and
// returns the number of bytes written. Nothing after a failing section is
// written.
func Write(ctx context.Context, out io.Writer, g *assets.GameAssets, opts Options) (int64, error) {
	err := g.Validate()
	if err != nil {
		return 0, err
	}

	w := &writer{
		version: g.Version,
		stamp:   DateTime(opts.Timestamp),
		opts:    opts,
		g:       g,
	}

	log.Info().Msgf("writing %s project", g.Version)

	var written int64
	for _, section := range w.sections() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		logger := log.With().Str("section", section.name).Logger()

		p := gmkio.Buffer{}
		err := section.write(ctx, &p)
		if err != nil {
			return written, &SectionError{Section: section.name, Err: err}
		}

		n, err := out.Write(p)
		written += int64(n)
		if err != nil {
			return written, &SectionError{Section: section.name, Err: err}
		}

		logger.Debug().Msgf("wrote %d bytes", n)
	}

	return written, nil
}
