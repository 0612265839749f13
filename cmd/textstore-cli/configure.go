package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/sagarc03/textstore/clientcli"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Manage server profiles",
	Long: `Manage server profiles in the configuration file.

Profiles allow you to save connection settings for multiple textstore servers
and easily switch between them using --profile or TEXTSTORE_PROFILE.

Configuration is stored in ~/.textstore/config.yaml`,
}

var configureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured profiles",
	Long: `List all profiles configured in the config file.

The default profile is marked with an asterisk (*).`,
	RunE: runConfigureList,
}

var configureAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile interactively.

You will be prompted for:
  - Endpoint URL
  - Base path (route prefix, empty for none)
  - Whether to set as default

The endpoint connection will be tested before saving.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigureAdd,
}

var configureRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigureRemove,
}

var configureSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigureSetDefault,
}

var configureShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Long: `Show details for a profile.

If no name is provided, shows the default profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigureShow,
}

func init() {
	configureCmd.AddCommand(configureListCmd)
	configureCmd.AddCommand(configureAddCmd)
	configureCmd.AddCommand(configureRemoveCmd)
	configureCmd.AddCommand(configureSetDefaultCmd)
	configureCmd.AddCommand(configureShowCmd)
}

func runConfigureList(_ *cobra.Command, _ []string) error {
	cfg, err := clientcli.LoadOrCreateConfigFile(getConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("Run 'textstore-cli configure add <name>' to create one.")
		return nil
	}

	return getFormatter().FormatProfileList(os.Stdout, cfg.Profiles, cfg.DefaultName())
}

func runConfigureAdd(_ *cobra.Command, args []string) error {
	configPath := getConfigPath()

	cfg, err := clientcli.LoadOrCreateConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	res, err := addProfile(cfg, args[0], terminalPrompter{}, checkServer, os.Stdout)
	if err != nil {
		return handlePromptError(err)
	}
	if !res.Saved {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if res.Updated {
		fmt.Printf("Profile '%s' updated.\n", args[0])
	} else {
		fmt.Printf("Profile '%s' added.\n", args[0])
	}
	if res.Default {
		fmt.Println("Set as default profile.")
	}
	return nil
}

// addResult describes what addProfile did to the config file.
type addResult struct {
	Saved   bool
	Updated bool
	Default bool
}

// addProfile asks for the settings of profile name and stores them in cf.
// Nothing changes when the user declines a confirmation.
func addProfile(cf *clientcli.ConfigFile, name string, pr prompter, check func(string) error, out io.Writer) (addResult, error) {
	_, lookupErr := cf.GetProfile(name)
	exists := lookupErr == nil
	if exists && !pr.Confirm(fmt.Sprintf("Profile '%s' already exists. Update it", name)) {
		return addResult{}, nil
	}

	endpointURL, err := pr.Text("Endpoint URL", clientcli.DefaultEndpoint, validateEndpoint)
	if err != nil {
		return addResult{}, err
	}
	basePathVal, err := pr.Text("Base path (empty for none)", "", validateBasePath)
	if err != nil {
		return addResult{}, err
	}

	makeDefault := len(cf.Profiles) > 0 && pr.Confirm("Set as default profile")

	resolved := (&clientcli.Config{Endpoint: endpointURL, BasePath: basePathVal}).WithDefaults()

	_, _ = fmt.Fprint(out, "Testing connection... ")
	if connErr := check(resolved.Endpoint + resolved.BasePath); connErr != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "Warning: Could not connect to server: %v\n", connErr)
		if !pr.Confirm("Save profile anyway") {
			return addResult{}, nil
		}
	} else {
		_, _ = fmt.Fprintln(out, "OK")
	}

	updated, err := cf.Upsert(clientcli.Profile{
		Name:     name,
		Endpoint: resolved.Endpoint,
		BasePath: resolved.BasePath,
	}, makeDefault)
	if err != nil {
		return addResult{}, err
	}

	return addResult{Saved: true, Updated: updated, Default: cf.DefaultName() == name}, nil
}

func validateEndpoint(input string) error {
	if input == "" {
		return errors.New("endpoint URL is required")
	}
	return (&clientcli.Config{Endpoint: input}).Validate()
}

func validateBasePath(input string) error {
	return (&clientcli.Config{BasePath: input}).Validate()
}

func runConfigureRemove(_ *cobra.Command, args []string) error {
	name := args[0]
	configPath := getConfigPath()

	cfg, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err = cfg.GetProfile(name); err != nil {
		return err
	}

	if !(terminalPrompter{}).Confirm(fmt.Sprintf("Remove profile '%s'", name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := cfg.RemoveProfile(name); err != nil {
		return fmt.Errorf("remove profile: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Profile '%s' removed.\n", name)
	return nil
}

func runConfigureSetDefault(_ *cobra.Command, args []string) error {
	name := args[0]
	configPath := getConfigPath()

	cfg, err := clientcli.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.SetDefault(name); err != nil {
		return err
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Default profile set to '%s'.\n", name)
	return nil
}

func runConfigureShow(_ *cobra.Command, args []string) error {
	cfg, err := clientcli.LoadConfigFile(getConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	p, err := cfg.GetProfile(name)
	if err != nil {
		return err
	}

	return getFormatter().FormatProfileShow(os.Stdout, *p, p.Name == cfg.DefaultName())
}

// prompter collects interactive answers for the configure commands.
type prompter interface {
	Text(label, def string, validate func(string) error) (string, error)
	Confirm(label string) bool
}

// terminalPrompter prompts on the terminal with promptui.
type terminalPrompter struct{}

func (terminalPrompter) Text(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def == "",
		Validate:  validate,
	}
	return p.Run()
}

// Confirm reports whether the user answered yes. Any prompt error counts as no.
func (terminalPrompter) Confirm(label string) bool {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := p.Run()
	return err == nil
}

// checkServer reports whether anything answers HTTP at baseURL. Any response
// counts, since an unmatched path still gets the usage 404.
func checkServer(baseURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
