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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"timefmt.io/timefmt/go/datetime"
	"timefmt.io/timefmt/go/datetime/format"
)

func runParse(cmd *cobra.Command, args []string) error {
	items, err := compileDescription()
	if err != nil {
		return err
	}
	p, err := format.Parse(items, args[0])
	if err != nil {
		return err
	}
	odt, err := p.OffsetDateTime()
	if errors.Is(err, format.ErrInsufficientInformation) {
		// A description without offset components still names an
		// instant if we read the date-time as UTC.
		dt, dtErr := p.DateTime()
		if dtErr != nil {
			return err
		}
		odt = datetime.NewOffsetDateTime(dt, datetime.UTC)
	} else if err != nil {
		return err
	}
	out, err := format.FormatOffsetDateTime(format.Rfc3339{}, odt)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func Parse() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse text with the format description and print it as RFC 3339",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}
