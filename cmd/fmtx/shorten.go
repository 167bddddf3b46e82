/*
   Copyright 2025 The DIRPX Authors.

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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/fmtx"
)

var shortenCmd = &cobra.Command{
	Use:   "shorten [NAME...]",
	Short: "Print the short form of fully qualified type names",
	Long: `Print the short form of each fully qualified type name, one per line.
With no arguments, names are read from standard input, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			for _, name := range args {
				if err := shorten(out, name); err != nil {
					return err
				}
			}
			return nil
		}
		return shortenLines(out, cmd.InOrStdin())
	},
}

func shortenLines(out io.Writer, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if err := shorten(out, name); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read names: %w", err)
	}
	return nil
}

func shorten(out io.Writer, full string) error {
	short := fmtx.ShortName(full)
	logger.Debug("Shortened type name", zap.String("full", full), zap.String("short", short))
	_, err := fmt.Fprintln(out, short)
	return err
}

func init() {
	rootCmd.AddCommand(shortenCmd)
}
