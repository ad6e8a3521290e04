package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/config"
	"github.com/cfoust/gmk/pkg/convert"
	"github.com/cfoust/gmk/pkg/gmk"
	"github.com/cfoust/gmk/pkg/normalize"

	"github.com/rs/zerolog/log"
)

func readGraph(path string, strict bool) (*assets.GameAssets, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return assets.ReadGraph(bufio.NewReader(file), strict)
}

func convertCommand(ctx context.Context) error {
	args := CLI.Convert

	cfg, err := config.Process(args.Configs)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	if args.Deobfuscate != "" {
		opts.Deobfuscate, err = normalize.ParseMode(args.Deobfuscate)
		if err != nil {
			return err
		}
	}
	if args.Preserve {
		opts.FixEvents = false
	}
	if args.SingleThread {
		opts.Parallel = false
	}

	strict := cfg.Conversion.Strict && !args.Lazy
	g, err := readGraph(args.Input, strict)
	if err != nil {
		return err
	}

	output := args.Output
	if output == "" {
		output = convert.DefaultOutputPath(args.Input, g.Version)
	}

	log.Info().Msgf("converting %s game to %s", g.Version, output)
	switch opts.Deobfuscate {
	case normalize.ModeOn:
		log.Info().Msg("deobfuscation on: asset names and GML code will be standardised")
	case normalize.ModeOff:
		log.Info().Msg("deobfuscation off: obfuscation will be left as it is")
	}

	result, err := convert.WriteFile(ctx, output, g, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%016x  %s\n", result.Digest, output)
	return nil
}

func inspectCommand() error {
	data, err := os.ReadFile(CLI.Inspect.File)
	if err != nil {
		return err
	}

	summary, err := gmk.Inspect(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s, game id %d, guid %s\n", summary.Version, summary.GameID, summary.GUID)
	for _, section := range summary.Sections {
		fmt.Printf("%8d %8d  %s\n", section.Offset, section.Size, section.Name)
	}

	for _, group := range summary.Tree {
		fmt.Printf("%s (%d)\n", group.Name, len(group.Children))
		for _, node := range group.Children {
			fmt.Printf("  %4d  %s\n", node.Index, node.Name)
		}
	}
	return nil
}

func sampleCommand() error {
	version := assets.GameMaker80
	if CLI.Sample.GM81 {
		version = assets.GameMaker81
	}

	file, err := os.Create(CLI.Sample.Output)
	if err != nil {
		return err
	}
	defer file.Close()

	err = assets.WriteGraph(file, assets.Sample(version))
	if err != nil {
		return err
	}
	return file.Close()
}
