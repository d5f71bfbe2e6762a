package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"medtrack/internal/adapters/storage"
	"medtrack/internal/domain/records"

	"github.com/spf13/cobra"
)

var importDB string

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage dose records",
}

var recordsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JSON array of dose records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		var items []importItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		if importDB != "" {
			cfg.Storage.PostgresDSN = ""
			cfg.Storage.SQLitePath = importDB
		}
		stores, err := storage.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		defer stores.Close()

		if stores.Backend == storage.BackendMemory {
			log.Warn("no persistent store configured; imported records are discarded on exit", nil)
		}

		svc := records.NewService(stores.Records)
		imported, skipped := 0, 0
		for i, it := range items {
			_, err := svc.Create(cmd.Context(), records.CreateInput{
				Name:   it.Name,
				Date:   it.Date,
				Time:   it.Time,
				Dose:   it.Dose,
				Status: it.Status,
				Source: records.SourceImport,
			})
			if err != nil {
				if errors.Is(err, records.ErrInvalidInput) {
					skipped++
					log.Warn("record skipped", map[string]any{"index": i, "name": it.Name, "date": it.Date})
					continue
				}
				return err
			}
			imported++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d records, skipped %d\n", imported, skipped)
		return nil
	},
}

type importItem struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Dose   string `json:"dose"`
	Status string `json:"status"`
}

func init() {
	recordsImportCmd.Flags().StringVar(&importDB, "db", "", "SQLite file to import into")
	recordsCmd.AddCommand(recordsImportCmd)
}
