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
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/fmtx/apis"
	"dirpx.dev/fmtx/config"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "Validate a configuration file and print the effective config",
	Long: `Load a YAML configuration file, validate it and print the effective
configuration with defaults applied. Without FILE the defaults are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if len(args) == 1 {
			var err error
			cfg, err = config.LoadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("Loaded configuration", zap.String("path", args[0]))
		}

		data, err := encodeConfig(cfg, configOutput)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func encodeConfig(cfg apis.Config, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return config.Marshal(cfg)
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want yaml or json)", format)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "Output format: yaml or json")
}
