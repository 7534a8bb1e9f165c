/*
Copyright 2024 The Timefmt Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd implements the timefmt command line tool, a thin front end
// over the format and description packages.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"timefmt.io/timefmt/go/datetime/format"
	"timefmt.io/timefmt/go/datetime/format/description"
)

var (
	descFlag     string
	strftimeFlag bool
)

func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:  "timefmt",
		Args: cobra.NoArgs,
		Run:  func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	registerDescriptionFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(Format())
	rootCmd.AddCommand(Parse())
	rootCmd.AddCommand(Describe())

	return rootCmd
}

func registerDescriptionFlags(fs *pflag.FlagSet) {
	fs.StringVarP(
		&descFlag,
		"desc", "d",
		"",
		"the format description, e.g. \"[year]-[month]-[day]\"")
	fs.BoolVar(
		&strftimeFlag,
		"strftime",
		false,
		"interpret --desc as a strftime format string")
}

// compileDescription turns the --desc flag into a runnable format.
func compileDescription() (format.Items, error) {
	if strftimeFlag {
		items, err := description.ParseStrftime(descFlag)
		if err != nil {
			return nil, err
		}
		return format.Items(items), nil
	}
	items, err := description.Parse(descFlag)
	if err != nil {
		return nil, err
	}
	return format.Items(items), nil
}
