/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the credential-agent issuing service.
package main

import (
	"github.com/spf13/cobra"

	"github.com/trustbloc/credential-agent/cmd/credential-agent/startcmd"
	"github.com/trustbloc/credential-agent/internal/pkg/log"
)

var logger = log.New("credential-agent")

// Version is set during build.
var Version string

func main() {
	rootCmd := &cobra.Command{
		Use: "credential-agent",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(startcmd.WithVersion(Version)))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run credential-agent", log.WithError(err))
	}
}
