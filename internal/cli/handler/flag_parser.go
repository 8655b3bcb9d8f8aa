package handler

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// RequireFlags fails with a usage error when any of names was not set
func RequireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return cli.Usagef("--%s is required", name)
		}
	}
	return nil
}

// RequireOneOf fails with a usage error unless at least one of names was set
func RequireOneOf(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return nil
		}
	}
	return cli.Usagef("at least one of %v is required", names)
}

// Exclusive fails with a usage error when more than one of names was set
func Exclusive(cmd *cobra.Command, names ...string) error {
	var set []string
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			set = append(set, name)
		}
	}
	if len(set) > 1 {
		return cli.Usagef("flags %v can not be used together", set)
	}
	return nil
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}
