// Command eanlabel validates EAN-13 codes, renders them as barcodes and
// exports barcode labels as PDF.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eanlabel/internal/barcode"
	"eanlabel/internal/config"
	"eanlabel/internal/logging"
	"eanlabel/internal/pdfexport"
	"eanlabel/internal/service"
	"eanlabel/internal/shell"
	"eanlabel/internal/storage/localfs"
)

var (
	// Global flags
	cfgFile string
	noColor bool

	// Set up in PersistentPreRunE
	cfg    *config.Config
	logger zerolog.Logger
	svc    service.BarcodeService
	ui     *shell.UI
)

var rootCmd = &cobra.Command{
	Use:   "eanlabel",
	Short: "EAN-13 validator and barcode label generator",
	Long: `eanlabel checks EAN-13 codes, draws them as barcodes and saves
barcode labels as PDF.

Run without arguments for an interactive session. Generated images are kept
in the artifact directory until the session ends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if noColor {
			cfg.App.NoColor = true
		}

		logger = logging.New(cfg.Log)
		svc = service.NewBarcodeService(
			barcode.NewCode128Renderer(cfg.Barcode),
			localfs.NewArtifactStore(&cfg.Artifacts),
			pdfexport.NewWriter(),
			localfs.NewExportSink(&cfg.Export),
			&cfg.Display,
			logger,
		)
		ui = shell.NewUI(cmd.OutOrStdout(), cfg.App.NoColor)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.New(svc, ui, cfg.Display.PreviewColumns, logger)
		return sh.Run(cmd.Context(), cmd.InOrStdin())
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <code>",
	Short: "Check the EAN-13 checksum of a code without rendering it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sh := shell.New(svc, ui, cfg.Display.PreviewColumns, logger)
		sh.Validate(args[0])
	},
}

var exportPDF bool

var generateCmd = &cobra.Command{
	Use:   "generate <code>",
	Short: "Render and validate a code, optionally saving <code>_barcode.pdf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		defer func() {
			if err := svc.Shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error().Err(err).Msg("generate: cleanup failed")
			}
		}()

		sh := shell.New(svc, ui, cfg.Display.PreviewColumns, logger)
		sh.Generate(ctx, args[0])
		if exportPDF {
			sh.ExportPDF(ctx, args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: env vars and .env)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	generateCmd.Flags().BoolVar(&exportPDF, "pdf", false, "also save the barcode label as PDF")

	rootCmd.AddCommand(validateCmd, generateCmd)
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
