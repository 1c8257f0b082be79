package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skydeck-dev/skydeck/internal/config"
	"github.com/skydeck-dev/skydeck/internal/geozone"
	"github.com/skydeck-dev/skydeck/internal/ui"
)

var (
	zoneName        string
	zoneCountry     string
	zoneRestriction string
)

// zonesCmd groups the airspace-zone fixture commands.
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Manage airspace-zone fixture files",
	Long: `Manage the static airspace-zone fixtures under fixtures/geozones/.

The test harness matches fixture files byte for byte, so existing files
are never rewritten. New fixtures are scaffolded with 'zones new' and
edited by hand afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fixture files",
	Run:   runZonesList,
}

var zonesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every fixture file",
	Run:   runZonesCheck,
}

var zonesNewCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Scaffold a new fixture file",
	Long: `Scaffold a new fixture file with one starter zone.

The zone gets a generated identifier and a circle footprint; edit the
file afterwards to describe the scenario. Existing files are refused.

Examples:
  skydeck zones new heliport.json --name "Heliport approach" \
    --country CHE --restriction REQ_AUTHORISATION`,
	Args: cobra.ExactArgs(1),
	Run:  runZonesNew,
}

func init() {
	zonesNewCmd.Flags().StringVar(&zoneName, "name", "", "Zone name")
	zonesNewCmd.Flags().StringVar(&zoneCountry, "country", "CHE", "ISO 3166-1 alpha-3 country code")
	zonesNewCmd.Flags().StringVar(&zoneRestriction, "restriction", geozone.RestrictionProhibited,
		"Restriction kind ("+strings.Join(geozone.Restrictions, ", ")+")")

	zonesCmd.AddCommand(zonesListCmd)
	zonesCmd.AddCommand(zonesCheckCmd)
	zonesCmd.AddCommand(zonesNewCmd)
	rootCmd.AddCommand(zonesCmd)
}

func runZonesList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	names, err := geozone.ListFixtures(cfg.ZonesDir())
	if err != nil {
		ui.Fatal("%v", err)
	}

	if len(names) == 0 {
		ui.Warning("No fixtures found in %s", cfg.ZonesDir())
		os.Exit(0)
	}

	ui.Header("Fixtures:")
	for _, name := range names {
		set, err := geozone.Load(filepath.Join(cfg.ZonesDir(), name))
		if err != nil {
			ui.Item("%s (unreadable: %v)", name, err)
			continue
		}
		ui.Item("%s (%d zones)", name, len(set.Features))
	}
}

func runZonesCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	failures := checkZones(cfg.ZonesDir())
	if failures > 0 {
		ui.Error("%d fixture(s) failed validation", failures)
		os.Exit(1)
	}
	ui.Success("All fixtures valid")
}

// checkZones validates every fixture in dir and reports per-file results.
// Returns the number of failing files.
func checkZones(dir string) int {
	names, err := geozone.ListFixtures(dir)
	if err != nil {
		ui.Error("%v", err)
		return 1
	}

	failures := 0
	for _, name := range names {
		set, err := geozone.Load(filepath.Join(dir, name))
		if err == nil {
			err = geozone.ValidateSet(set)
		}
		if err != nil {
			ui.Error("%s: %v", name, err)
			failures++
			continue
		}
		ui.Success("%s", name)
	}
	return failures
}

func runZonesNew(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	file := args[0]
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}

	name := zoneName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), ".json")
	}

	if err := os.MkdirAll(cfg.ZonesDir(), 0755); err != nil {
		ui.Fatal("create fixtures directory: %v", err)
	}

	path := filepath.Join(cfg.ZonesDir(), file)
	set := geozone.Set{
		Title:    name,
		Features: []geozone.Zone{geozone.NewZone(name, zoneCountry, zoneRestriction)},
	}

	if err := geozone.WriteSet(path, set); err != nil {
		ui.Fatal("%v", err)
	}

	ui.Success("Scaffolded %s", path)
	fmt.Println("Edit the file to describe the scenario, then run 'skydeck zones check'.")
}
