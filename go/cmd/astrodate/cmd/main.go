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
	"github.com/spf13/cobra"

	"astrodate.io/astrodate/go/astro/log"
)

func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "astrodate",
		Short: "astrodate parses ISO 8601, Julian Date and Modified Julian Date literals",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, _ []string) { cmd.Help() },

		SilenceUsage: true,
	}

	log.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(Parse())
	rootCmd.AddCommand(MJD())
	rootCmd.AddCommand(Week())

	return rootCmd
}
