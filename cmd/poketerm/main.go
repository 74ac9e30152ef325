// Command poketerm applies a Pokémon-themed image as the desktop wallpaper
// and as the Windows Terminal background, with a foreground color picked from
// the image's average luminance. Close and reopen the terminal after a run to
// see the change; the terminal may rewrite its settings file while open.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"poketerm/catalog"
	"poketerm/config"
	"poketerm/luminance"
	"poketerm/terminal"
	"poketerm/wallpaper"

	"poketerm/util/log"
)

func main() {
	dataDir := flag.String("data", "", "base directory containing Data/ and Images/ (default: executable directory)")
	settings := flag.String("settings", "", "path to the Windows Terminal settings.json (default: per-user location)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: poketerm [flags] <pokemon_name_or_id|random|clear>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	selection := strings.ToLower(flag.Arg(0))

	settingsPath := config.TerminalSettingsPath(*settings)
	log.Debugf("terminal settings path: %s", settingsPath)

	if selection == "clear" || selection == "reset" {
		if err := clearTerminal(settingsPath); err != nil {
			fail(err)
		}
		fmt.Println("✔ Windows Terminal overrides cleared.")
		return
	}

	baseDir := config.CatalogDir(*dataDir)
	log.Debugf("catalog base directory: %s", baseDir)

	cat, err := catalog.Load(baseDir)
	if err != nil {
		fail(err)
	}

	entry, err := resolve(cat, selection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Pokémon %q not found.\n", selection)
		if names := cat.Names(); len(names) > 0 {
			n := len(names)
			if n > 10 {
				n = 10
			}
			fmt.Fprintf(os.Stderr, "▶ Available examples: %s …\n", strings.Join(names[:n], ", "))
		}
		os.Exit(1)
	}

	fmt.Printf("► Applying theme: %s (#%s)\n", entry.DisplayName(), entry.Label())

	ok := true

	setter := wallpaper.NewSetter()
	if err := setter.Set(entry.Path, true); err != nil {
		log.Printf("wallpaper: %v", err)
		fmt.Println("  Wallpaper: ✗")
		ok = false
	} else {
		fmt.Println("  Wallpaper: ✔")
	}

	switch {
	case !terminal.IsCompatible():
		fmt.Println("  Terminal : ⚠ not a Windows Terminal session")
	case settingsPath == "":
		fmt.Println("  Terminal : ✗ cannot locate settings.json (is LOCALAPPDATA set?)")
		ok = false
	default:
		if err := applyTerminal(settingsPath, entry.Path); err != nil {
			log.Printf("terminal: %v", err)
			fmt.Println("  Terminal : ✗")
			ok = false
		} else {
			fmt.Println("  Terminal : ✔")
		}
	}

	if !ok {
		fmt.Println("✗ Completed with errors")
		os.Exit(1)
	}
	fmt.Println("✔ Done!")
}

// resolve turns the positional argument into a catalog entry.
func resolve(cat *catalog.Catalog, selection string) (*catalog.Entry, error) {
	if selection == "random" {
		if e := cat.Random(); e != nil {
			return e, nil
		}
		return nil, catalog.ErrNotFound
	}
	return cat.Get(selection)
}

// applyTerminal computes the contrast foreground for the image and patches it
// into the settings document together with the background image.
func applyTerminal(settingsPath, imagePath string) error {
	lum, err := luminance.Average(imagePath)
	if err != nil {
		return err
	}
	fg := luminance.Foreground(lum, config.DefaultDarkThreshold)
	log.Debugf("luminance %.3f -> foreground %s", lum, fg)

	return terminal.NewProvider(settingsPath).Apply(imagePath, fg)
}

func clearTerminal(settingsPath string) error {
	if settingsPath == "" {
		return errors.New("cannot locate the Windows Terminal settings.json (is LOCALAPPDATA set?)")
	}
	return terminal.NewProvider(settingsPath).Clear()
}

func fail(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, terminal.ErrConfigNotFound):
		msg += "\n  launch Windows Terminal once to generate it"
	case errors.Is(err, terminal.ErrConfigShape):
		msg += "\n  the file was left untouched; fix it by hand or regenerate it"
	}
	fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	os.Exit(1)
}
