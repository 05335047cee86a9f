/*
Copyright 2025 The Astrodate Authors.

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

	"astrodate.io/astrodate/go/astro/datetime"
	"astrodate.io/astrodate/go/astro/log"
)

func MJD() *cobra.Command {
	return &cobra.Command{
		Use:   "mjd <date> [<date> ...]",
		Short: "Print the Modified Julian Day number of ISO 8601 dates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMJD,
	}
}

func runMJD(cmd *cobra.Command, args []string) error {
	rejected := 0
	for _, arg := range args {
		d, err := datetime.ParseDate(arg)
		if err != nil {
			log.Errorf("%v", err)
			rejected++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", arg, d.MJD())
	}
	if rejected > 0 {
		return fmt.Errorf("rejected %d of %d dates", rejected, len(args))
	}
	return nil
}
