package main

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-ng-collection/arr"
	"github.com/hasbyte1/go-ng-collection/collections"
)

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, a.records.Count())
		},
	}
}

func (a *app) firstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "Print the first record, or null",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			first, _ := a.records.First()
			return a.print(cmd, first)
		},
	}
}

func (a *app) lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the last record, or null",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			last, _ := a.records.Last()
			return a.print(cmd, last)
		},
	}
}

func (a *app) itemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "Print every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, a.records.Items())
		},
	}
}

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [field]",
		Short: "Sum the numeric values of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, number(a.records.SumBy(args[0])))
		},
	}
}

func (a *app) avgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avg [field]",
		Short: "Average the numeric values of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeZeros, _ := cmd.Flags().GetBool("exclude-zeros")
			return a.print(cmd, number(a.records.AverageBy(args[0], excludeZeros)))
		},
	}
	cmd.Flags().Bool("exclude-zeros", false, "ignore records whose value is not greater than zero")
	return cmd
}

func (a *app) maxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max [field]",
		Short: "Print the largest value of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := a.records.MaxOK(args[0])
			if !ok {
				return a.print(cmd, nil)
			}
			return a.print(cmd, number(v))
		},
	}
}

func (a *app) minCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "min [field]",
		Short: "Print the smallest value of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := a.records.MinOK(args[0])
			if !ok {
				return a.print(cmd, nil)
			}
			return a.print(cmd, number(v))
		},
	}
}

func excludeEmptyFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool("exclude-empty", false, "skip records whose value is empty")
	return cmd
}

func (a *app) countByCmd() *cobra.Command {
	return excludeEmptyFlag(&cobra.Command{
		Use:   "count-by [field]",
		Short: "Count records per distinct value of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeEmpty, _ := cmd.Flags().GetBool("exclude-empty")
			return a.print(cmd, a.records.CountBy(args[0], excludeEmpty))
		},
	})
}

func (a *app) uniqueCmd() *cobra.Command {
	return excludeEmptyFlag(&cobra.Command{
		Use:   "unique [field]",
		Short: "List the distinct values of a field in order of first occurrence",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeEmpty, _ := cmd.Flags().GetBool("exclude-empty")
			return a.print(cmd, a.records.FetchUniqueValues(args[0], excludeEmpty))
		},
	})
}

func (a *app) groupByCmd() *cobra.Command {
	return excludeEmptyFlag(&cobra.Command{
		Use:   "group-by [field]",
		Short: "Group records by the distinct values of a field",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeEmpty, _ := cmd.Flags().GetBool("exclude-empty")
			groups := a.records.GroupBy(args[0], excludeEmpty)
			a.log.Debug("grouped records", "field", args[0], "groups", groups.Len())
			return a.print(cmd, groups)
		},
	})
}

func (a *app) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [field]",
		Short: "Sort records ascending by a field, case-insensitively",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, a.records.SortBy(args[0]))
		},
	}
}

func (a *app) pluckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pluck [field]",
		Short: "Print the value of a field for every record",
		Args:  fieldArgs(1, cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, collections.Pluck(a.records, args[0]))
		},
	}
}

// pullResult is the output of the pull command.
type pullResult struct {
	Pulled    any                          `json:"pulled"`
	Remaining *collections.Collection[any] `json:"remaining"`
}

func (a *app) pullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [field] [value...]",
		Short: "Remove records whose field equals one of the values",
		Long: `Remove records whose field equals one of the values.

With a single value the last removed record (or null) is printed;
with several values the removed records are printed as an array.
Values are read as JSON when possible, so 12 matches the number 12
and "12" (quoted for the shell) matches the string.`,
		Args: fieldArgs(2, nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := args[0]
			var pulled any
			if len(args) == 2 {
				item, ok := a.records.PullByVal(field, parseValue(args[1]))
				if ok {
					pulled = item
				}
			} else {
				values := make([]any, 0, len(args)-1)
				for _, s := range args[1:] {
					values = append(values, parseValue(s))
				}
				pulled = a.records.PullByVals(field, values)
			}
			a.log.Debug("pulled records", "field", field, "remaining", a.records.Count())
			return a.print(cmd, pullResult{Pulled: pulled, Remaining: a.records})
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [field] [value]",
		Short: "Set a field on every object record and print the records",
		Args:  fieldArgs(2, cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := parseValue(args[1])
			a.records.Transform(func(item any, _ int, _ []any) {
				if r, ok := item.(map[string]any); ok {
					arr.Set(r, args[0], value)
				}
			})
			return a.print(cmd, a.records)
		},
	}
}
