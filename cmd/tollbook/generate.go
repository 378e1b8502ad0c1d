package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tollbook/internal/cli"
	"tollbook/internal/config"
	"tollbook/internal/interchange"
	"tollbook/internal/pipeline"
	"tollbook/internal/report"
	"tollbook/internal/service"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [csv files...]",
		Short: "Generate the monthly ledger from usage-history CSV exports",
		Long: `Generate matches the toll records in one or more ETC usage-history CSV
exports against the configured commute route and writes the monthly ledger
spreadsheet.

Examples:
  # Generate from a single export with the configured route
  tollbook generate ~/Downloads/meisai_2025_05.csv

  # Override the route and fare for this run
  tollbook generate --from 大分米良 --to 日田 --fare 1340 meisai.csv

  # Fill the official template instead of building from scratch
  tollbook generate --template templates/実績簿.xlsx meisai.csv

  # Merge several exports covering the same month
  tollbook generate ~/Downloads/meisai_*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().String("from", "", "route origin interchange")
	cmd.Flags().String("to", "", "route destination interchange")
	cmd.Flags().Int("fare", 0, "one-way fare in yen")
	cmd.Flags().Int("allowance", 0, "monthly allowance ceiling in yen")
	cmd.Flags().String("match-mode", "", "endpoint matching: substring or exact")
	cmd.Flags().String("month", "", "target month as YYYY-MM (default: latest in the data)")
	cmd.Flags().String("template", "", "official ledger template to fill")
	cmd.Flags().StringP("output", "o", "", "output xlsx path")
	cmd.Flags().String("organization", "", "organization for the ledger header")
	cmd.Flags().String("position", "", "position for the ledger header")
	cmd.Flags().String("name", "", "applicant name for the ledger header")
	cmd.Flags().BoolP("dry-run", "d", false, "run the pipeline without writing the spreadsheet")

	_ = viper.BindPFlag("route.from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("route.to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("route.match_mode", cmd.Flags().Lookup("match-mode"))
	_ = viper.BindPFlag("report.template", cmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("report.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("identity.organization", cmd.Flags().Lookup("organization"))
	_ = viper.BindPFlag("identity.position", cmd.Flags().Lookup("position"))
	_ = viper.BindPFlag("identity.name", cmd.Flags().Lookup("name"))

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load(viper.GetViper())

	if fare, _ := cmd.Flags().GetInt("fare"); cmd.Flags().Changed("fare") {
		cfg.Route.Fare = fare
	}
	if allowance, _ := cmd.Flags().GetInt("allowance"); cmd.Flags().Changed("allowance") {
		cfg.Route.Allowance = allowance
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	monthFlag, _ := cmd.Flags().GetString("month")
	year, month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return err
	}

	for _, endpoint := range []string{cfg.Route.From, cfg.Route.To} {
		if endpoint != "" && !interchange.Known(endpoint) {
			slog.Warn("route endpoint is not in the interchange list", "endpoint", endpoint)
		}
	}

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	slog.Info("🛣️  Generating ledger...",
		"file_count", len(files),
		"route", fmt.Sprintf("%s-%s", cfg.Route.From, cfg.Route.To),
		"dry_run", dryRun)

	records, err := parseFiles(ctx, files)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg.Route)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, records, year, month)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderSummary(result, cfg.Route))
	if result.Empty() {
		fmt.Println(cli.WarningStyle.Render("⚠ no record matched the target month; the ledger will be empty"))
	}

	if dryRun {
		fmt.Println(cli.SubtleStyle.Render("dry run: no spreadsheet written"))
		return nil
	}

	output := cfg.Output
	if output == "" {
		output = defaultOutputPath(result.Year, result.Month, cfg.Identity.Name)
	}

	var writer service.ReportWriter
	writer, err = report.NewWriter(report.Config{
		OutputPath:   output,
		TemplatePath: cfg.Template,
	}, slog.Default())
	if err != nil {
		return err
	}

	if err := writer.Write(ctx, p.Report(result, cfg.Identity)); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ ledger written to %s", output)))
	return nil
}
