package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"harmonia/internal/config"
	"harmonia/internal/settings"
	"harmonia/internal/store"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings import, export, and inspection",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigImportCommand(ctx))
	configCmd.AddCommand(newConfigExportCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample settings document",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = "settings.toml"
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(expanded); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", expanded)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := settings.CreateSample(expanded); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings document")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing settings document")
	return cmd
}

func newConfigImportCommand(ctx *commandContext) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Apply a settings document to the store",
		Long: "Parses a TOML or JSON settings document and merges it into persisted state.\n" +
			"Fields the document omits are left untouched; with --replace, mount points\n" +
			"and users are cleared first so the document becomes the complete truth.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else if cfg.SettingsFile != "" {
				path = cfg.SettingsFile
			}
			if strings.TrimSpace(path) == "" {
				return errors.New("no settings file given and settings_file is not configured")
			}

			doc, err := settings.ParseFile(path)
			if err != nil {
				return err
			}

			logger := ctx.logger()
			return ctx.withStore(func(st *store.Store) error {
				if replace {
					if err := settings.Overwrite(cmd.Context(), st, doc); err != nil {
						return err
					}
					logger.Info("settings replaced", "file", path, "database", st.Path())
				} else {
					if err := settings.Amend(cmd.Context(), st, doc); err != nil {
						return err
					}
					logger.Info("settings amended", "file", path, "database", st.Path())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Clear mount points and users before applying the document")
	return cmd
}

func newConfigExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export persisted settings as a document",
		Long:  "Reads persisted state and serializes it as TOML or JSON. Passwords are always emptied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				doc, err := settings.Read(cmd.Context(), st)
				if err != nil {
					return err
				}

				var encoded []byte
				switch strings.ToLower(strings.TrimSpace(format)) {
				case "", "toml":
					encoded, err = settings.EncodeTOML(doc)
				case "json":
					encoded, err = settings.EncodeJSON(doc)
				default:
					return fmt.Errorf("unsupported export format %q", format)
				}
				if err != nil {
					return err
				}

				if strings.TrimSpace(outputPath) == "" {
					_, err = cmd.OutOrStdout().Write(encoded)
					return err
				}
				if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported settings to %s\n", outputPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Export format: toml or json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display persisted settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				doc, err := settings.Read(cmd.Context(), st)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()

				globalRows := [][]string{}
				if doc.AlbumArtPattern != nil {
					globalRows = append(globalRows, []string{"album_art_pattern", *doc.AlbumArtPattern})
				}
				if doc.ReindexIntervalSeconds != nil {
					globalRows = append(globalRows, []string{"reindex_interval_seconds", strconv.Itoa(*doc.ReindexIntervalSeconds)})
				}
				fmt.Fprintln(out, renderSection("Global", []string{"Setting", "Value"}, globalRows))

				mountRows := [][]string{}
				if doc.MountPoints != nil {
					for _, mount := range *doc.MountPoints {
						mountRows = append(mountRows, []string{mount.Name, mount.Source})
					}
				}
				fmt.Fprintln(out, renderSection("Mount points", []string{"Name", "Source"}, mountRows))

				userRows := [][]string{}
				if doc.Users != nil {
					for _, user := range *doc.Users {
						userRows = append(userRows, []string{user.Name})
					}
				}
				fmt.Fprintln(out, renderSection("Users", []string{"Name"}, userRows))

				ddnsRows := [][]string{}
				if doc.DynamicDNS != nil && doc.DynamicDNS.Host != "" {
					ddnsRows = append(ddnsRows, []string{doc.DynamicDNS.Host, doc.DynamicDNS.Username})
				}
				fmt.Fprintln(out, renderSection("Dynamic DNS", []string{"Host", "Username"}, ddnsRows))

				return nil
			})
		},
	}
}
