package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"roseh.moe/pkg/toon"
)

var (
	rootCmd = &cobra.Command{
		Use:          "toon",
		Short:        "toon",
		SilenceUsage: true,
		Long:         `Encode and decode Token-Oriented Object Notation (TOON) documents.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugFlag {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	delimiterFlag string
	indentFlag    int
	strictFlag    bool
	debugFlag     bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&delimiterFlag, "delimiter", "comma", "array value delimiter: comma, tab, or pipe")
	rootCmd.PersistentFlags().IntVar(&indentFlag, "indent", 0, "indentation width in spaces (0 means default)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", true, "reject shape, count, width, and indentation anomalies while decoding")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log a repr dump of the decoded Value tree to stderr")
	return rootCmd.Execute()
}

func delimiterFromFlag(name string) (toon.Delimiter, error) {
	switch name {
	case "", "comma":
		return toon.DelimiterComma, nil
	case "tab":
		return toon.DelimiterTab, nil
	case "pipe":
		return toon.DelimiterPipe, nil
	default:
		return 0, fmt.Errorf("unknown delimiter %q (want comma, tab, or pipe)", name)
	}
}
