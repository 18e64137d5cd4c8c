// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const licenseText = `notes-emitter
Copyright Mesh Intelligence Inc., 2026. All rights reserved.
`

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Print the license of notes-emitter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(licenseText)
	},
}

func init() {
	rootCmd.AddCommand(licenseCmd)
}
