package normalize

import (
	"fmt"

	"github.com/cfoust/gmk/pkg/assets"

	"github.com/rs/zerolog/log"
)

// Mode decides whether asset names are regenerated.
type Mode int

const (
	ModeAuto Mode = iota
	ModeOn
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeOn:
		return "on"
	case ModeOff:
		return "off"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(value string) (Mode, error) {
	switch value {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	}
	return ModeAuto, fmt.Errorf("invalid deobfuscation mode %q (expected auto, on or off)", value)
}

type Options struct {
	Mode      Mode
	FixEvents bool
}

// Report describes what the pass changed.
type Report struct {
	Obfuscated      bool
	Deobfuscated    bool
	Renamed         int
	RewrittenCode   int
	RepairedActions int
}

// Run normalizes the graph in place. Problems are logged and skipped; the
// pass itself never fails.
func Run(g *assets.GameAssets, opts Options) Report {
	report := Report{
		Obfuscated: IsObfuscated(g),
	}

	deobfuscate := false
	switch opts.Mode {
	case ModeOn:
		deobfuscate = true
	case ModeOff:
		if report.Obfuscated {
			log.Warn().Msg("graph appears obfuscated but deobfuscation is disabled")
		}
	default:
		if report.Obfuscated {
			log.Info().Msg("graph appears obfuscated, enabling deobfuscation")
			deobfuscate = true
		}
	}

	if opts.FixEvents {
		report.RepairedActions = RepairActions(g)
		if report.RepairedActions > 0 {
			log.Info().Msgf("repaired %d code actions", report.RepairedActions)
		}
	}

	if deobfuscate {
		result := Deobfuscate(g)
		report.Deobfuscated = true
		report.Renamed = result.Renamed
		report.RewrittenCode = result.RewrittenCode
		log.Info().Msgf(
			"renamed %d assets, rewrote %d pieces of code",
			result.Renamed,
			result.RewrittenCode,
		)
	}

	return report
}
