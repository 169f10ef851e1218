package cli

import (
	"time"

	"github.com/alexanderramin/roadtrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Roadmaps service.RoadmapService
	Trends   service.TrendService

	// Now is the clock used by the trend view. Defaults to time.Now.
	Now func() time.Time

	// Setup wires the services from the global flags before any subcommand
	// runs. Left nil when the services are injected directly.
	Setup func(opts GlobalOptions) error
}

// GlobalOptions are the persistent flags shared by every subcommand.
type GlobalOptions struct {
	DBPath     string
	ConfigPath string
	Ephemeral  bool
	NoColor    bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "roadtrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts GlobalOptions

	root := &cobra.Command{
		Use:           "roadtrack",
		Short:         "Track progress through the PCB and AI/ML learning roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil {
				return nil
			}
			return app.Setup(opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.DBPath, "db", "", "SQLite database path (overrides config)")
	pf.StringVar(&opts.ConfigPath, "config", "", "Config file (YAML or TOML)")
	pf.BoolVar(&opts.Ephemeral, "ephemeral", false, "Keep progress in memory for this run only")
	pf.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newStatusCmd(app),
		newShowCmd(app),
		newToggleCmd(app),
		newResetCmd(app),
		newTrendCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
