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
	"io"
	"strings"

	"github.com/spf13/cobra"

	"timefmt.io/timefmt/go/datetime/format/description"
)

func runDescribe(cmd *cobra.Command, _ []string) error {
	if strftimeFlag {
		items, err := description.ParseStrftime(descFlag)
		if err != nil {
			return err
		}
		for _, item := range items {
			dumpItem(cmd.OutOrStdout(), item, 0)
		}
		return nil
	}
	// The owned parser also admits [optional ...] and [first ...].
	item, err := description.ParseOwned(descFlag)
	if err != nil {
		return err
	}
	dumpItem(cmd.OutOrStdout(), item, 0)
	return nil
}

// dumpItem prints the compiled tree one node per line, nesting by
// indentation.
func dumpItem(w io.Writer, item description.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	switch it := item.(type) {
	case description.Literal:
		fmt.Fprintf(w, "%sliteral %q\n", indent, string(it))
	case description.Component:
		fmt.Fprintf(w, "%scomponent %#v\n", indent, it.Spec)
	case description.Optional:
		fmt.Fprintf(w, "%soptional\n", indent)
		for _, sub := range it.Items {
			dumpItem(w, sub, depth+1)
		}
	case description.First:
		fmt.Fprintf(w, "%sfirst\n", indent)
		for i, alt := range it {
			fmt.Fprintf(w, "%s  alternative %d\n", indent, i)
			for _, sub := range alt {
				dumpItem(w, sub, depth+2)
			}
		}
	case description.Compound:
		for _, sub := range it {
			dumpItem(w, sub, depth)
		}
	}
}

func Describe() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Dump the compiled form of the format description",
		Args:  cobra.NoArgs,
		RunE:  runDescribe,
	}
}
