package cmdshared

import (
	"errors"
	"fmt"

	modrinthApi "codeberg.org/jmansfield/go-modrinth/modrinth"
	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"

	"github.com/FloatyJellyfish/mod-updater/core"
)

// ChooseProject presents an interactive menu for ambiguous search results.
// In non-interactive mode the first (most relevant) hit is taken.
func ChooseProject(candidates []*modrinthApi.SearchResult) (*modrinthApi.SearchResult, error) {
	if viper.GetBool("non-interactive") || len(candidates) == 1 {
		return candidates[0], nil
	}

	menu := wmenu.NewMenu("Choose a number:")
	menu.Option("Cancel", nil, false, nil)
	for i, v := range candidates {
		// Should be non-nil (Title is a required field)
		menu.Option(*v.Title, v, i == 0, nil)
	}

	var chosen *modrinthApi.SearchResult
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("mod selection cancelled")
		}
		result, ok := menuRes[0].Value.(*modrinthApi.SearchResult)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		chosen = result
		return nil
	})
	if err := menu.Run(); err != nil {
		return nil, err
	}
	return chosen, nil
}

// ChooseVersion presents an interactive menu for picking one of several
// matching mod versions. In non-interactive mode the first (most recent)
// version is taken.
func ChooseVersion(versions []*core.ModVersion) (*core.ModVersion, error) {
	if viper.GetBool("non-interactive") || len(versions) == 1 {
		return versions[0], nil
	}

	menu := wmenu.NewMenu("Choose a number:")
	menu.Option("Cancel", nil, false, nil)
	for i, v := range versions {
		menu.Option(fmt.Sprintf("%s (%s)", v.Name, v.FileName), v, i == 0, nil)
	}

	var chosen *core.ModVersion
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("version selection cancelled")
		}
		result, ok := menuRes[0].Value.(*core.ModVersion)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		chosen = result
		return nil
	})
	if err := menu.Run(); err != nil {
		return nil, err
	}
	return chosen, nil
}
