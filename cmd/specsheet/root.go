package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tsawler/specsheet"
	"github.com/tsawler/specsheet/dimension"
	"github.com/tsawler/specsheet/internal/config"
	"github.com/tsawler/specsheet/internal/logging"
	"github.com/tsawler/specsheet/internal/output"
	"github.com/tsawler/specsheet/reader"
	"github.com/tsawler/specsheet/techspec"
)

// Commands, one per result kind.
const (
	cmdDimensions = "dimensions"
	cmdTechSpec   = "techspec"
	cmdVSD        = "vsd"
	cmdOptions    = "options"
	cmdAll        = "all"
)

// RootCmd returns the specsheet command writing to the operating system file
// system.
func RootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{
		Use:          "specsheet",
		Short:        "Extract compressor specification sheet data as JSON",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: specsheet.yaml in ., ./configs or $HOME/.config/specsheet)")
	flags.String("out", "outputs", "output directory")
	flags.Bool("stdout", false, "print JSON to stdout instead of writing files")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("text", reader.TextLayout.String(), "page text source: layout or plain")
	flags.String("header", techspec.DefaultHeaderLabel, "technical specifications header label")
	flags.String("family-token", dimension.DefaultFamilyToken, "family token marking model group lines")
	flags.IntSlice("pages", nil, "1-indexed pages to read, e.g. --pages 1,2 (default: all)")

	root.AddCommand(
		extractCmd(fs, cmdDimensions, "Extract model groups and outline dimensions"),
		techSpecCmd(fs),
		extractCmd(fs, cmdVSD, "Extract variable speed drive technical specifications"),
		extractCmd(fs, cmdOptions, "Extract the options availability matrix"),
		extractCmd(fs, cmdAll, "Run every extractor and write one report"),
	)

	return root
}

func extractCmd(fs afero.Fs, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file.pdf>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, name, args[0])
		},
	}
}

func techSpecCmd(fs afero.Fs) *cobra.Command {
	cmd := extractCmd(fs, cmdTechSpec, "Extract fixed-speed technical specifications")
	cmd.Flags().String("layout", string(techspec.LayoutSections), "table layout: sections or frequency")
	return cmd
}

// run loads configuration, extracts one result kind from path and writes it.
func run(cmd *cobra.Command, fs afero.Fs, name, path string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	log := logger.WithFields(logrus.Fields{
		"command": name,
		"file":    path,
	})

	ext := specsheet.Open(path).
		HeaderLabel(cfg.Parser.HeaderLabel).
		FamilyToken(cfg.Parser.FamilyToken).
		Scoring(cfg.ScoreConfig()).
		Policies(cfg.Policies()).
		TextSource(cfg.TextSource())

	pages, err := cmd.Flags().GetIntSlice("pages")
	if err != nil {
		return fmt.Errorf("failed to get pages flag: %w", err)
	}
	if len(pages) > 0 {
		ext = ext.Pages(pages...)
	}

	log.Debug("extracting")
	res, err := extract(cmd.Context(), ext, name, cfg, path)
	logWarnings(log, res.warnings)
	if err != nil {
		log.WithError(err).Error("extraction failed")
		return err
	}

	if cfg.Output.Stdout {
		return output.Encode(cmd.OutOrStdout(), res.value, cfg.Output.Indent)
	}

	written, err := output.NewWriter(fs, cfg.Output.Dir, cfg.Output.Indent).Write(res.fileName, res.value)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":     written,
		"warnings": len(res.warnings),
	}).Info("wrote output")
	return nil
}

// result is one extracted value with the file name it is written under.
type result struct {
	value    any
	fileName string
	warnings []specsheet.Warning
}

func extract(ctx context.Context, ext *specsheet.Extractor, name string, cfg *config.Config, path string) (result, error) {
	stem := output.Stem(path)

	switch name {
	case cmdDimensions:
		dims, warnings, err := ext.Dimensions()
		if err != nil {
			return result{warnings: warnings}, err
		}
		return result{
			value:    dims,
			fileName: output.FileName(dims.ProductFamily, dims.GroupLabels(), output.KindDimensions),
			warnings: warnings,
		}, nil

	case cmdTechSpec:
		if cfg.Layout() == techspec.LayoutFrequency {
			table, warnings, err := ext.FixedSpeedTable()
			return result{table, output.FileName(stem, nil, output.KindFixedSpeed), warnings}, err
		}
		specs, warnings, err := ext.TechSpecs()
		return result{specs, output.FileName(stem, nil, output.KindTechSpecs), warnings}, err

	case cmdVSD:
		v, warnings, err := ext.VSDTechSpecs()
		return result{v, output.FileName(stem, nil, output.KindVSD), warnings}, err

	case cmdOptions:
		opts, warnings, err := ext.Options()
		return result{opts, output.FileName(stem, nil, output.KindOptions), warnings}, err

	case cmdAll:
		report, warnings, err := ext.All(ctx)
		return result{report, output.FileName(stem, nil, output.KindReport), warnings}, err
	}

	return result{}, fmt.Errorf("unknown command %q", name)
}

func logWarnings(log *logrus.Entry, warnings []specsheet.Warning) {
	for _, w := range warnings {
		entry := log.WithField("source", w.Source)
		if w.Page > 0 {
			entry = entry.WithField("page", w.Page)
		}
		if w.Line > 0 {
			entry = entry.WithField("line", w.Line)
		}
		if w.Text != "" {
			entry = entry.WithField("text", w.Text)
		}
		entry.Warn(w.Message)
	}
}
