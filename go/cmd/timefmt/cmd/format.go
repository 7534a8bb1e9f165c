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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timefmt.io/timefmt/go/datetime/format"
)

var formatOptIn string

func runFormat(cmd *cobra.Command, _ []string) error {
	items, err := compileDescription()
	if err != nil {
		return err
	}
	odt, err := format.ParseOffsetDateTime(format.Rfc3339{}, formatOptIn)
	if err != nil {
		return fmt.Errorf("parsing --in as RFC 3339: %w", err)
	}
	out, err := format.FormatOffsetDateTime(items, odt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func Format() *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Render an RFC 3339 date-time with the format description",
		Args:  cobra.NoArgs,
		RunE:  runFormat,
	}
	formatCmd.Flags().StringVar(
		&formatOptIn,
		"in",
		"",
		"the date-time to render, as RFC 3339")
	formatCmd.MarkFlagRequired("in")
	return formatCmd
}
