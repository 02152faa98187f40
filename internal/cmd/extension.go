package cmd

import (
	"bytes"
	"fmt"

	"github.com/qawatake/rwd/internal/environment"
	"github.com/qawatake/rwd/internal/extension"
	"github.com/spf13/cobra"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Manage rwd catalog plugins",
	Long: `Manage rwd catalog plugins. Plugins are executables named rwd-* in your PATH.
Each plugin is run as "<plugin> catalog" and must print a recipe catalog in YAML.`,
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed plugins",
	Long:  `List all rwd plugins available in your PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := extension.NewManager()
		extensions, err := manager.FindExtensions()
		if err != nil {
			return fmt.Errorf("failed to find plugins: %v", err)
		}

		out := cmd.OutOrStdout()
		if len(extensions) == 0 {
			fmt.Fprintln(out, "No plugins found.")
			fmt.Fprintf(out, "Plugins are executables named '%s*' in your PATH.\n", extension.Prefix)
			return nil
		}

		fmt.Fprintf(out, "Found %d plugin(s):\n", len(extensions))
		for _, ext := range extensions {
			fmt.Fprintf(out, "  %s\t%s\n", ext.Name, ext.Path)
		}
		return nil
	},
}

var pluginCatalogCmd = &cobra.Command{
	Use:   "catalog <name>",
	Short: "Show the recipes and styles a plugin provides",
	Long:  `Run a single plugin and list the recipes and styles in its catalog.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext, err := extension.NewManager().Find(args[0])
		if err != nil {
			return err
		}

		data, err := ext.Catalog(cmd.Context())
		if err != nil {
			return err
		}
		cat, err := environment.Parse(ext.Source(), bytes.NewReader(data))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", ext.Name, ext.Path)
		fmt.Fprintln(out, "Recipes:")
		for _, r := range cat.Recipes {
			fmt.Fprintf(out, "  %s\n", r.Name)
		}
		fmt.Fprintln(out, "Styles:")
		for _, s := range cat.Styles {
			fmt.Fprintf(out, "  %s\n", s.Name)
		}
		return nil
	},
}

func init() {
	pluginCmd.AddCommand(pluginListCmd)
	pluginCmd.AddCommand(pluginCatalogCmd)
	rootCmd.AddCommand(pluginCmd)
}
