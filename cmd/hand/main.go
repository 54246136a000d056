// Command hand runs a Hand program from a file or standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/handlang/hand/interp"
	"github.com/handlang/hand/lexer"
)

var Version = "0.1.0"

var (
	dialect  string
	output   string
	maxSteps int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "hand [file]",
	Short: "Hand language interpreter",
	Long: `hand interprets the Hand esoteric language: seven symbols moving a
cursor over a byte tape. Programs are read from a file argument or from
standard input, and output bytes go to standard output.

The symbol alphabet is selectable with --dialect: "hand" (the emoji
alphabet), "classic" (the traditional ASCII one), or the path of a YAML
dialect file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hand v%s %s %s/%s\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&dialect, "dialect", "d", "hand", "symbol alphabet: hand, classic, or a YAML file")
	rootCmd.Flags().StringVarP(&output, "output", "o", "-", "output file ('-' for stdout)")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort after this many steps (0 = unlimited)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose execution logging")

	rootCmd.AddCommand(versionCmd)
}

func dialectFor(name string) (d lexer.Dialect, err error) {
	switch name {
	case "hand":
		return lexer.Hand, nil
	case "classic":
		return lexer.Classic, nil
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return lexer.LoadDialect(inf)
}

func run(cmd *cobra.Command, args []string) (err error) {
	var source io.Reader = os.Stdin
	if len(args) == 1 {
		inf, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer inf.Close()
		source = inf
	}

	in := interp.New()
	in.Verbose = verbose
	in.StepLimit = maxSteps

	in.Dialect, err = dialectFor(dialect)
	if err != nil {
		return
	}

	if output == "-" {
		in.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			return err
		}
		defer ouf.Close()
		in.Output = ouf
	}

	err = in.Load(source)
	if err != nil {
		return
	}

	return in.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
