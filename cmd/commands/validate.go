package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/vca"
)

var validateOrderFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an order record",
	Long: `Check an order record for missing mandatory fields and malformed
right;left paired values. Exits non-zero when the record is invalid.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateOrderFile, "order", "", "Path to order JSON file")
	validateCmd.MarkFlagRequired("order")
}

func runValidate(cmd *cobra.Command, args []string) error {
	record, err := loadOrderFile(validateOrderFile)
	if err != nil {
		return err
	}

	result := vca.Validate(record)
	if result.IsValid {
		fmt.Println("Order is valid")
		return nil
	}

	for _, msg := range result.Errors {
		fmt.Println(msg)
	}
	return fmt.Errorf("order failed validation with %d error(s)", len(result.Errors))
}
