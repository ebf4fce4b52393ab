package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "asciiflow [file...]",
		Short: "Draw ASCII diagrams in the terminal",
		Long: `asciiflow is a grid editor for plain-text diagrams.

Boxes, lines and arrows are stored as generic line markers and their glyphs
are derived from the neighbouring cells, so lines join up on their own.

Examples:
  asciiflow                    # Start with an empty diagram
  asciiflow flow.txt           # Edit flow.txt (created on save)
  asciiflow render flow.txt    # Export flow.txt as flow.png
  asciiflow normalize -w a.txt # Re-derive line glyphs in place`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runEditor(cfg, args)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to config.yaml")

	root.AddCommand(newRenderCmd(&configPath), newNormalizeCmd(&configPath))
	return root
}

func newRenderCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a text diagram to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			setupCLILogging(cfg)

			d, err := readDiagram(args[0], cfg)
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := d.ExportToPNG(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", absPath(output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (default: input name with .png)")
	return cmd
}

func newNormalizeCmd(configPath *string) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Re-derive line glyphs and trim a text diagram",
		Long: `Imports a text diagram, resolves every line and arrow glyph from its
neighbours and prints the result cropped to the occupied area.
Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			setupCLILogging(cfg)

			d, err := readDiagram(args[0], cfg)
			if err != nil {
				return err
			}
			text := d.OutputText(nil)
			if write && args[0] != "-" {
				return os.WriteFile(args[0], []byte(text), 0644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	return cmd
}

// readDiagram loads a text file, or stdin for "-", into a diagram large
// enough to hold it.
func readDiagram(name string, cfg *Config) (*Diagram, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return diagramFromText(string(data), cfg.MaxUndo)
}

func diagramFromText(text string, maxUndo int) (*Diagram, error) {
	lines := splitTextLines(text)
	width := 1
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	d := NewDiagram(width, max(len(lines), 1), maxUndo)
	if err := d.ImportAt(text, point{}); err != nil {
		return nil, err
	}
	d.CommitDraw()
	return d, nil
}
