package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"roseh.moe/pkg/toon"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a TOON document to JSON",
	Long:  "Reads a TOON document from a file argument or stdin and writes the equivalent JSON to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	opts := toon.DecodeOptions{Indent: indentFlag, Strict: strictFlag}
	v, err := toon.Decode(string(data), opts)
	if err != nil {
		return fmt.Errorf("decoding TOON: %w (line %d)", err, toon.Line(err))
	}

	if debugFlag {
		logrus.Debug(repr.String(v, repr.Indent("  ")))
	}

	out, err := toon.ValueToJSON(v)
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
