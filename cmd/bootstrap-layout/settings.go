package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/renderers/tui"
	"github.com/goliatone/go-bootstrap-layout/pkg/settings"
)

func (a *app) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the layout builder settings",
	}
	cmd.AddCommand(a.settingsShowCmd())
	cmd.AddCommand(a.settingsSetCmd())
	cmd.AddCommand(a.settingsEditCmd())
	return cmd
}

func (a *app) settingsShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(cmd.Context(), a.store)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), s)
			}
			return printYAML(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}

func (a *app) settingsSetCmd() *cobra.Command {
	var (
		hide       bool
		colorsFile string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings",
		Example: `  bootstrap-layout settings set --hide-section-settings=true
  bootstrap-layout settings set --background-colors-file colors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("hide-section-settings") && colorsFile == "" {
				return errors.New("nothing to set")
			}
			current, err := settings.Load(cmd.Context(), a.store)
			if err != nil {
				return err
			}

			values := model.Values{settings.KeyHideSectionSettings: current.HideSectionSettings}
			if flags.Changed("hide-section-settings") {
				values.Set(settings.KeyHideSectionSettings, hide)
			}
			if colorsFile != "" {
				data, err := os.ReadFile(colorsFile)
				if err != nil {
					return err
				}
				values.Set(settings.KeyBackgroundColors, string(data))
			}
			return a.settingsForm().Submit(cmd.Context(), values)
		},
	}
	cmd.Flags().BoolVar(&hide, "hide-section-settings", false, `hide the "Advanced Settings" of layout forms`)
	cmd.Flags().StringVar(&colorsFile, "background-colors-file", "", "file with one key|label background colour per line")
	return cmd
}

func (a *app) settingsEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the settings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := a.settingsForm()
			descriptor, err := form.Build(cmd.Context())
			if err != nil {
				return err
			}
			values, err := tui.New().Collect(cmd.Context(), descriptor, nil)
			if err != nil {
				return err
			}
			return form.Submit(cmd.Context(), values)
		},
	}
}

func (a *app) settingsForm() *settings.Form {
	return settings.NewForm(a.store, settings.WithLogger(a.logger))
}
