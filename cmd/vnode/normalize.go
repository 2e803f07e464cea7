package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vnode/pkg/markup"
)

func normalizeCmd(flags *globalFlags) *cobra.Command {
	var (
		components string
		indent     int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "normalize [file|-]",
		Short: "Decode an element description and print its snapshot",
		Long: `Decode an element description and print the normalized node tree.

The description is read from the named file, or from stdin when the
argument is "-" or missing. Component tags are resolved through the
components file given by --components or by "components" in vnode.json.

Examples:
  vnode normalize page.yaml
  cat page.json | vnode normalize --format=yaml
  vnode normalize page.yaml --components=components.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runNormalize(cmd, flags, path, components, indent, format)
		},
	}

	cmd.Flags().StringVar(&components, "components", "", "Component definitions file (default from vnode.json)")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation; 0 prints compact JSON")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")

	return cmd
}

func runNormalize(cmd *cobra.Command, flags *globalFlags, path, components string, indent int, format string) error {
	cfg, logger, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if components == "" {
		components = cfg.ComponentsPath()
	}

	registry := markup.NewRegistry()
	if components != "" {
		if err := registry.LoadFile(components); err != nil {
			return err
		}
		logger.Debug("components loaded", "path", components, "count", registry.Len())
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	node, err := markup.NewDecoder(registry).Decode(in)
	if err != nil {
		return err
	}
	snap := markup.Encode(node)
	logger.Debug("normalized", "source", path, "nodes", snap.Count())

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		return enc.Encode(snap)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
