package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cfoust/gmk/pkg/config"
	"github.com/cfoust/gmk/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Convert struct {
		Input        string   `arg:"" name:"graph" help:"Asset graph dump (CBOR) produced by the decompiler." type:"existingfile"`
		Output       string   `short:"o" help:"Project file to write. Defaults to the input path with the extension GameMaker expects."`
		Lazy         bool     `help:"Ignore fields in the asset graph dump that this version does not know about."`
		Deobfuscate  string   `short:"d" help:"Regenerate asset names: auto, on or off. Overrides the configuration."`
		Preserve     bool     `short:"p" help:"Keep custom code actions as they are instead of converting them to execute code actions."`
		SingleThread bool     `short:"s" name:"singlethread" help:"Encode assets on a single thread."`
		Configs      []string `short:"c" name:"config" help:"Configuration files, applied in order." type:"existingfile"`
	} `cmd:"" help:"Convert a decompiled game into a GameMaker 8 project file."`

	Inspect struct {
		File string `arg:"" help:"Project file to inspect." type:"existingfile"`
	} `cmd:"" help:"Print the section layout and asset names of a project file."`

	Sample struct {
		Output string `arg:"" help:"Where to write the asset graph dump."`
		GM81   bool   `name:"gm81" help:"Produce a GameMaker 8.1 graph instead of 8.0."`
	} `cmd:"" help:"Write a small example asset graph dump."`

	Config struct {
		Resolved bool     `help:"Print the effective configuration after applying the given files."`
		Configs  []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order." type:"existingfile"`
	} `cmd:"" help:"Write gm8po's default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func configCommand() error {
	if !CLI.Config.Resolved && len(CLI.Config.Configs) == 0 {
		_, err := os.Stdout.Write(config.DEFAULT)
		return err
	}

	resolved, err := config.Process(CLI.Config.Configs)
	if err != nil {
		return err
	}

	data, err := resolved.YAML()
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("gm8po"),
		kong.Description("turn decompiled GameMaker 8 games back into editable projects"),
		kong.UsageOnError(),
		kong.Vars{"version": "gm8po " + version.String()},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var err error
	switch ctx.Command() {
	case "convert <graph>":
		err = convertCommand(runCtx)
	case "inspect <file>":
		err = inspectCommand()
	case "sample <output>":
		err = sampleCommand()
	case "config", "config <configs>":
		err = configCommand()
	}

	if err != nil {
		cancel()
		writeError(err)
	}
}
