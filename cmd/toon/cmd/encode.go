package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"roseh.moe/pkg/toon"
)

var (
	lengthMarkersFlag bool

	encodeCmd = &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON document as TOON",
		Long:  "Reads JSON from a file argument or stdin and writes the equivalent TOON document to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncode,
	}
)

func init() {
	encodeCmd.Flags().BoolVar(&lengthMarkersFlag, "length-markers", false, "prefix array header lengths with '#'")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := toon.ValueFromJSON(data)
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	if debugFlag {
		logrus.Debug(repr.String(v, repr.Indent("  ")))
	}

	delim, err := delimiterFromFlag(delimiterFlag)
	if err != nil {
		return err
	}
	opts := toon.EncodeOptions{Indent: indentFlag, Delimiter: delim, LengthMarkers: lengthMarkersFlag}

	out, err := toon.EncodeString(v, opts)
	if err != nil {
		return fmt.Errorf("encoding TOON: %w", err)
	}
	fmt.Println(out)
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
