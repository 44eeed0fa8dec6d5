package commands

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/vca"
)

var (
	orderFile    string
	outputFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Encode an order record into VCA text",
	Long: `Read an order record from a JSON file and encode it into the VCA
fixed-field line format.

Examples:
  # Print the VCA text
  vca-engine convert --order order.json

  # Print VCA text and validation verdict as JSON
  vca-engine convert --order order.json --format json`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&orderFile, "order", "", "Path to order JSON file")
	convertCmd.Flags().StringVar(&outputFormat, "format", "vca", "Output format (vca, json)")
	convertCmd.MarkFlagRequired("order")
}

func runConvert(cmd *cobra.Command, args []string) error {
	record, err := loadOrderFile(orderFile)
	if err != nil {
		return err
	}

	validation := vca.Validate(record)
	encoded := vca.Encode(record)

	switch outputFormat {
	case "json":
		out, err := json.MarshalIndent(map[string]interface{}{
			"vca":        encoded,
			"validation": validation,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "vca":
		// Encoding never fails; warn about validation problems but emit
		// the text regardless.
		for _, msg := range validation.Errors {
			log.Warn(msg)
		}
		fmt.Println(encoded)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	return nil
}

func loadOrderFile(path string) (vca.OrderRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var record vca.OrderRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse order file: %w", err)
	}
	return record, nil
}
