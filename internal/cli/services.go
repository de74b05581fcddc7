// Package cli — services.go implements the "stackctl services" command.
//
// Unlike the other stack operations, services never dispatches an
// external command: it reads the selected compose file directly and
// prints the unit names it defines.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// NewServicesCommand creates the "services" cobra command.
func NewServicesCommand() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List unit names defined in the selected configuration",
		Long: `List the service names defined in the compose file for the selected mode.

Examples:
  stackctl services
  stackctl services --mode production --json`,

		Args: cobra.NoArgs,

		RunE: func(_ *cobra.Command, _ []string) error {
			return runServices(modeFlag)
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

// runServices prints the services of the selected compose file.
func runServices(modeFlag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := model.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	path := cfg.ComposeFile(mode)
	names, err := compose.Services(path)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to list services for mode %s", mode), err)
	}

	if IsJSONOutput() {
		out := struct {
			Mode     string   `json:"mode"`
			File     string   `json:"file"`
			Services []string `json:"services"`
		}{Mode: mode.String(), File: path, Services: names}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Services in %s (%s):\n", path, mode)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
