package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"canvasmenu/app"
	"canvasmenu/canvas"
	"canvasmenu/clip"
	"canvasmenu/config"
	"canvasmenu/dispatch"
	"canvasmenu/log"
	"canvasmenu/menu"
	"canvasmenu/strategies"
	"canvasmenu/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version       = "0.1.0"
	clipboardFlag string
	chooseFlag    string
	rootCmd       = &cobra.Command{
		Use:   "canvasmenu",
		Short: "Canvas Menu - context menus for a terminal canvas",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			log.InitializeWithConfig(cfg.LogConfig())
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("canvasmenu needs a terminal; use 'canvasmenu menu <kind>' for scripted use")
			}
			return app.Run(cmd.Context(), cfg)
		},
	}

	menuCmd = &cobra.Command{
		Use:   "menu <kind>",
		Short: "Show the context menu for a kind and run the chosen entry",
		Long: "Builds the menu a right-click on an item of the given kind would show. " +
			"Use Background for empty canvas space. On a terminal the entry is read from stdin; " +
			"otherwise the menu is only listed unless --choose is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.InitializeWithConfig(config.LoadConfig().LogConfig())
			defer log.Close()

			var clipboard menu.Clipboard = clip.NewFallback(clip.System{})
			if cmd.Flags().Changed("clipboard") {
				clipboard = clip.Static(clipboardFlag)
			}
			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			return runMenu(cmd.OutOrStdout(), os.Stdin, menu.Kind(args[0]), clipboard, chooseFlag, interactive)
		},
	}

	kindsCmd = &cobra.Command{
		Use:   "kinds",
		Short: "List the kinds that have a context menu",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range strategies.NewRegistry().Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug info like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", configDir+"/"+config.ConfigFileName, configJson)
			logPath, err := log.GetLogFilePath(cfg.LogConfig())
			if err != nil {
				return fmt.Errorf("failed to get log path: %w", err)
			}
			fmt.Printf("Logs: %s\n", logPath)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of canvasmenu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("canvasmenu version %s\n", version)
		},
	}
)

// runMenu dispatches a trigger on a single item of kind, or on empty space for
// the background kind, and runs the chosen entry.
func runMenu(out io.Writer, in io.Reader, kind menu.Kind, clipboard menu.Clipboard, choose string, interactive bool) error {
	scene := canvas.NewScene()
	if kind != menu.KindBackground {
		scene.Add(canvas.NewItem(kind, 0, 0))
	}

	var surface dispatch.Surface
	switch {
	case choose != "":
		surface = ui.NewPromptSurface(strings.NewReader(choose+"\n"), out)
	case interactive:
		surface = ui.NewPromptSurface(in, out)
	}

	d := dispatch.New(strategies.NewRegistry(), scene, surface, dispatch.Options{
		Canvas:    scene,
		Notifier:  ui.PrintNotifier{W: out},
		Clipboard: clipboard,
	})

	if surface == nil {
		p, ok := d.Open(menu.Point{})
		if !ok {
			return fmt.Errorf("no menu registered for kind %q", kind)
		}
		listing, _ := ui.FormatMenu(p.Menu())
		fmt.Fprint(out, listing)
		p.Dismiss()
		return nil
	}

	res := d.Dispatch(menu.Point{})
	if !res.Handled {
		return fmt.Errorf("no menu registered for kind %q", kind)
	}
	if choose != "" && res.Chosen == "" {
		return fmt.Errorf("entry %q cannot be chosen", choose)
	}
	return res.Err
}

func init() {
	menuCmd.Flags().StringVar(&clipboardFlag, "clipboard", "", "Use this text as the clipboard instead of the system clipboard")
	menuCmd.Flags().StringVar(&chooseFlag, "choose", "", "Entry number to run, e.g. 3 or 3.1 for a submenu entry")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
