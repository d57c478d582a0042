package cmd

import (
	"time"

	"github.com/penwern/curate-museum-crosswalk/internal"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	output       string
	outputFormat string
	inputFormat  string
	workers      int
)

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Convert metadata files to canonical records",
	Long: `Convert Linked Art, LIDO and EDM files to canonical artwork records.

Directories are searched recursively for .json, .jsonld, .xml and .rdf files.
The source format is detected from each file unless --input-format is given.`,
	Example: `  crosswalk convert objects/ -o artworks.parquet --format parquet
  crosswalk convert record.xml --input-format lido`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg := loadConfig()
		defer func() {
			logger.Debug("Execution time: %vs", time.Since(startTime).Seconds())
		}()

		svc, err := internal.NewService(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		return svc.RunArgs(ctx, &internal.ServiceArgs{
			Paths:        args,
			Output:       output,
			OutputFormat: outputFormat,
			InputFormat:  inputFormat,
			Workers:      workers,
		})
	},
}

func init() {
	convertCmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	convertCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (jsonl, yaml, parquet); defaults to the configured format")
	convertCmd.Flags().StringVar(&inputFormat, "input-format", "", "Force a source format (linked_art, lido, edm)")
	convertCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent file conversions; defaults to the configured value")
}
