package gmk

import (
	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"
)

const (
	gameInfoVersion uint32 = 800
	forceCPUBit            = 7
	errorOnArgsBit         = 1
)

func boolWord(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// vsyncWord holds only the vsync flag in GameMaker 8.0; 8.1 packs the
// force-CPU-render flag into bit 7.
func (w *writer) vsyncWord(s *assets.Settings) uint32 {
	word := boolWord(s.VSync)
	if w.version == assets.GameMaker81 {
		word |= boolWord(s.ForceCPURender) << forceCPUBit
	}
	return word
}

// uninitWord holds only the zero-uninitialized flag in GameMaker 8.0; 8.1
// packs the error-on-uninitialized-arguments flag into bit 1.
func (w *writer) uninitWord(s *assets.Settings) uint32 {
	word := boolWord(s.ZeroUninitialized)
	if w.version == assets.GameMaker81 {
		word |= boolWord(s.ErrorOnArgs) << errorOnArgsBit
	}
	return word
}

// putOptionalBlock writes an existence flag and, when data is present, the
// data as a compressed block.
func putOptionalBlock(p *io.Buffer, data []byte) error {
	p.PutBool(data != nil)
	if data == nil {
		return nil
	}
	return p.PutBlock(data)
}

func (w *writer) settings(s *assets.Settings, icon []byte) ([]byte, error) {
	p := io.Buffer{}
	err := p.Put(
		s.Fullscreen,
		s.InterpolatePixels,
		s.DontDrawBorder,
		s.DisplayCursor,
		s.Scaling,
		s.AllowResize,
		s.WindowOnTop,
		s.ClearColour,
		s.SetResolution,
		s.ColourDepth,
		s.Resolution,
		s.Frequency,
		s.DontShowButtons,
		w.vsyncWord(s),
		s.DisableScreensaver,
		s.F4FullscreenToggle,
		s.F1HelpMenu,
		s.EscCloseGame,
		s.F5SaveF6Load,
		s.F9Screenshot,
		s.TreatCloseAsEsc,
		s.Priority,
		s.FreezeOnLoseFocus,
		s.LoadingBar,
	)
	if err != nil {
		return nil, err
	}

	if s.LoadingBar == assets.LoadingBarCustom {
		err = putOptionalBlock(&p, s.LoadingBackground)
		if err != nil {
			return nil, err
		}
		err = putOptionalBlock(&p, s.LoadingForeground)
		if err != nil {
			return nil, err
		}
	}

	err = putOptionalBlock(&p, s.CustomLoadImage)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		s.Transparent,
		s.Translucency,
		s.ScaleProgressBar,
	)
	if err != nil {
		return nil, err
	}

	err = p.PutBlob(icon)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		s.ShowErrors,
		s.LogErrors,
		s.AlwaysAbort,
		w.uninitWord(s),
		s.Author,
		s.VersionString,
		w.stamp,
		s.Information,
		s.Major,
		s.Minor,
		s.Release,
		s.Build,
		s.Company,
		s.Product,
		s.Copyright,
		s.Description,
		w.stamp,
	)
	return p, err
}

func (w *writer) gameInformation(info *assets.GameInformation) ([]byte, error) {
	p := io.Buffer{}
	err := p.Put(
		info.BgColour,
		info.NewWindow,
		info.Caption,
		info.Left,
		info.Top,
		info.Width,
		info.Height,
		info.Border,
		info.Resizable,
		info.OnTop,
		info.FreezeGame,
		w.stamp,
		info.Info,
	)
	return p, err
}
