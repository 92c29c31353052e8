package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roseh.moe/pkg/toon"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a TOON document parses under strict mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	opts := toon.DecodeOptions{Indent: indentFlag, Strict: true}
	if _, err := toon.Decode(string(data), opts); err != nil {
		return fmt.Errorf("invalid: %w (line %d)", err, toon.Line(err))
	}
	fmt.Println("ok")
	return nil
}
