package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/store"
)

// db is the process-wide container registry. treectl is a short-lived
// CLI invocation per command, so container state does not persist
// across invocations — every command other than create looks its
// container up by name and fails if it was not created earlier in the
// same process. serve is the exception: it keeps a long-lived Store for
// the life of the HTTP process.
var db = store.New(64)

// RootCmd is the entry point cobra dispatches subcommands from.
var RootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Drive BT/CBST/NST containers from the command line",
	Long:  "treectl exercises the ordered-container library's public API: create a container of a given kind, then insert, search, remove, enumerate, or snapshot it.",
}

func init() {
	RootCmd.AddCommand(createCmd, insertCmd, searchCmd, removeCmd, clearCmd, enumerateCmd, snapshotCmd, serveCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <kind> <name>",
	Short: "Create a named container (kind: bt, cbst, nst)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := store.Kind(args[0])
		if _, err := db.CreateContainer(args[1], kind, nil); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s container %q\n", kind, args[1])
		return nil
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert <name> <key> <value>",
	Short: "Insert a key/value pair into a container",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Insert(args[1], args[2]))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <name> <key>",
	Short: "Search a container for a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		v := c.Search(args[1])
		if v == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "<nil>")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), *v)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name> <key>",
	Short: "Remove a key from a container",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Remove(args[1]))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <name>",
	Short: "Empty a container in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		c.Clear()
		return nil
	},
}

var enumerateCmd = &cobra.Command{
	Use:   "enumerate <name>",
	Short: "Print every (key, value) pair in a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		for _, kv := range c.Enumerate() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", kv.Key, kv.Value)
		}
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <name>",
	Short: "Print a container's structural snapshot as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := mustContainer(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(c.Snapshot())
	},
}

func mustContainer(name string) (*store.Container, error) {
	c, ok := db.Container(name)
	if !ok {
		return nil, fmt.Errorf("no such container %q", name)
	}
	return c, nil
}
