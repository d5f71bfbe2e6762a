package main

import (
	"fmt"
	"time"

	"medtrack/internal/adapters/source/remote"
	"medtrack/internal/adapters/storage"
	"medtrack/internal/domain/adherence"
	"medtrack/internal/domain/analytics"
	"medtrack/internal/domain/records"
	"medtrack/internal/report"

	"github.com/spf13/cobra"
)

var (
	reportYear       int
	reportMonthIndex int
	reportRemote     string
	reportDB         string
	reportWidth      int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print adherence summary, monthly calendar and daily chart",
	Long: `Print the adherence dashboard in the terminal.

Records come from the configured store (or --db PATH for a SQLite file), or from
another medtrack instance with --remote URL. Month index is 0-based (0 = January).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		var src analytics.RecordSource
		if reportRemote != "" {
			rs, err := remote.New(reportRemote, 15*time.Second)
			if err != nil {
				return err
			}
			src = rs
		} else {
			if reportDB != "" {
				cfg.Storage.PostgresDSN = ""
				cfg.Storage.SQLitePath = reportDB
			}
			stores, err := storage.Open(cmd.Context(), cfg.Storage)
			if err != nil {
				return err
			}
			defer stores.Close()
			src = records.NewService(stores.Records)
		}

		var year, month *int
		if cmd.Flags().Changed("year") {
			year = &reportYear
		}
		if cmd.Flags().Changed("month-index") {
			month = &reportMonthIndex
		}

		svc := analytics.NewService(src, adherence.NewAggregator(loc))
		d, err := svc.Dashboard(cmd.Context(), year, month)
		if err != nil {
			return err
		}

		log.Debug("report rendered", map[string]any{"records": d.Summary.Total, "year": d.Calendar.Year, "month_index": d.Calendar.MonthIndex})
		fmt.Fprint(cmd.OutOrStdout(), report.Render(d, report.Options{ChartWidth: reportWidth}))
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "calendar year (default: current)")
	reportCmd.Flags().IntVar(&reportMonthIndex, "month-index", 0, "0-based month (default: current)")
	reportCmd.Flags().StringVar(&reportRemote, "remote", "", "base URL of a medtrack API to read records from")
	reportCmd.Flags().StringVar(&reportDB, "db", "", "SQLite file to read records from")
	reportCmd.Flags().IntVar(&reportWidth, "width", 62, "chart width")
}
