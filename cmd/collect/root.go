package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-ng-collection/collections"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	conf    config
	log     *slog.Logger
	records *collections.Collection[any]
}

// newRootCmd builds the collect command tree.
func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}
	root := &cobra.Command{
		Use:   "collect",
		Short: "Query and reshape a JSON array of records",
		Long: `collect loads a JSON array of records and runs one collection
operation on it: counting, summing, averaging, grouping, sorting
or pulling records by field. Results are printed as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	setupFlags(root)

	root.AddCommand(
		a.countCmd(), a.firstCmd(), a.lastCmd(), a.itemsCmd(),
		a.sumCmd(), a.avgCmd(), a.maxCmd(), a.minCmd(),
		a.countByCmd(), a.uniqueCmd(), a.groupByCmd(),
		a.sortCmd(), a.pluckCmd(), a.pullCmd(), a.setCmd(),
	)
	for _, c := range root.Commands() {
		c.Annotations = map[string]string{recordsAnnotation: "true"}
	}
	return root
}

// recordsAnnotation marks the commands that operate on the input records.
// Commands without it (help, completion) run without reading input.
const recordsAnnotation = "records"

// setup resolves configuration and builds the logger. Record commands
// also get their input loaded here.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := readConfig(a.v, cmd)
	if err != nil {
		return err
	}
	a.conf = conf
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: conf.LogLevel}))

	if cmd.Annotations[recordsAnnotation] != "true" {
		return nil
	}
	data, err := a.readInput(cmd)
	if err != nil {
		return err
	}
	records, err := collections.FromJSONValues(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeInput, err)
	}
	a.records = records
	a.log.Debug("loaded records", "input", conf.Input, "count", records.Count())
	return nil
}

func (a *app) readInput(cmd *cobra.Command) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if a.conf.Input == "-" || a.conf.Input == "" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(a.conf.Input)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// print writes v to the command's output as JSON.
func (a *app) print(cmd *cobra.Command, v any) error {
	var (
		b   []byte
		err error
	)
	if a.conf.Indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

// number makes f printable as JSON: NaN and infinities become strings.
func number(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

// parseValue reads a command line value as JSON when possible, so 12 is a
// number and true a bool; anything else is taken as a raw string.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// fieldArgs validates that the first n arguments are present and the first
// one, the field name, is not empty.
func fieldArgs(n int, rest cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return err
		}
		if args[0] == "" {
			return ErrEmptyField
		}
		if rest != nil {
			return rest(cmd, args)
		}
		return nil
	}
}
