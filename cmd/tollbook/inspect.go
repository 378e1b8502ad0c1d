package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tollbook/internal/cli"
	"tollbook/internal/config"
	"tollbook/internal/normalize"
	"tollbook/internal/pipeline"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [csv files...]",
		Short: "Preview what a usage-history CSV would produce",
		Long: `Inspect parses the exports, detects the report period, and prints the
per-day matching result without writing a spreadsheet.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().String("month", "", "target month as YYYY-MM (default: latest in the data)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load(viper.GetViper())

	monthFlag, _ := cmd.Flags().GetString("month")
	year, month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return err
	}

	files, err := expandFiles(args)
	if err != nil {
		return err
	}
	records, err := parseFiles(ctx, files)
	if err != nil {
		return err
	}

	totalFare := 0
	parsable := 0
	for _, r := range records {
		if fare, ferr := normalize.ParseFare(r.Fare); ferr == nil {
			totalFare += fare
			parsable++
		}
	}

	fmt.Println(cli.TitleStyle.Render("利用明細"))
	fmt.Printf("総利用回数: %d回 (料金解析可能 %d回)\n", len(records), parsable)
	fmt.Printf("総利用料金: ¥%s\n", cli.FormatYen(totalFare))
	if trips, terr := cfg.Route.ExpectedTrips(); terr == nil {
		fmt.Printf("想定利用回数: %d回\n", trips)
	} else {
		fmt.Println(cli.WarningStyle.Render("想定利用回数: 片道料金が未設定のため計算できません"))
	}

	p, err := pipeline.New(cfg.Route)
	if err != nil {
		return err
	}
	result, err := p.Run(ctx, records, year, month)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderSummary(result, cfg.Route))

	days := make([]int, 0, len(result.Buckets))
	for day, bucket := range result.Buckets {
		if !bucket.Empty() {
			days = append(days, day)
		}
	}
	sort.Ints(days)

	for _, day := range days {
		bucket := result.Buckets[day]
		line := fmt.Sprintf("%2d日  午前 %s ¥%-7s 午後 %s ¥%s",
			day,
			markOrDash(bucket.Outbound.Mark.Glyph()),
			cli.FormatYen(bucket.Outbound.Amount),
			markOrDash(bucket.Return.Mark.Glyph()),
			cli.FormatYen(bucket.Return.Amount))
		fmt.Println(line)
	}

	return nil
}

func markOrDash(glyph string) string {
	if glyph == "" {
		return "－"
	}
	return glyph
}
