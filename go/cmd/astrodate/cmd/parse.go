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

func Parse() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <literal> [<literal> ...]",
		Short: "Parse date-time literals and print their fields",
		Long: "Parse date-time literals (\"<date>T<time>\", \"JD<n>[.<f>]\" or " +
			"\"MJD<n>[.<f>]\") and print the calendar fields, the time of day " +
			"and the Modified Julian Day number of each.",
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	rejected := 0
	for _, arg := range args {
		dt, err := datetime.ParseDateTime(arg)
		if err != nil {
			log.Errorf("%v", err)
			rejected++
			continue
		}
		d, t := dt.Date(), dt.Time()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v %v julian=%v mjd=%d\n",
			arg, d, t, dt.Julian(), d.MJD())
	}
	if rejected > 0 {
		return fmt.Errorf("rejected %d of %d literals", rejected, len(args))
	}
	return nil
}
