package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/roadtrack/internal/cli/formatter"
	"github.com/alexanderramin/roadtrack/internal/codec"
	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var phase int

	cmd := &cobra.Command{
		Use:   "show <track>",
		Short: "Show a track's phases and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := domain.ParseTrack(args[0])
			if err != nil {
				return err
			}
			rm, err := app.Roadmaps.Load(cmd.Context(), track)
			if err != nil {
				return loadFailure(err)
			}
			if phase != 0 {
				if _, ok := rm.FindPhase(phase); !ok {
					return fmt.Errorf("phase %d not found in %s roadmap", phase, track.Label())
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(track, rm, phase))
			return nil
		},
	}

	cmd.Flags().IntVar(&phase, "phase", 0, "Show only this phase")

	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <track> <phase> <task>",
		Short: "Mark a task done, or pending again if it was done",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := domain.ParseTrack(args[0])
			if err != nil {
				return err
			}
			phaseID, err := parsePhaseID(args[1])
			if err != nil {
				return err
			}
			taskID := args[2]

			ctx := cmd.Context()
			rm, err := app.Roadmaps.Load(ctx, track)
			if err != nil {
				return loadFailure(err)
			}
			if _, ok := rm.FindTask(phaseID, taskID); !ok {
				return fmt.Errorf("task %q not found in phase %d of the %s roadmap", taskID, phaseID, track.Label())
			}

			next, err := app.Roadmaps.ToggleTask(ctx, track, rm, phaseID, taskID)
			var writeErr *domain.StorageWriteError
			if err != nil && !errors.As(err, &writeErr) {
				return err
			}
			task, _ := next.FindTask(phaseID, taskID)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToggle(track, task, next.Stats))
			if writeErr != nil {
				return fmt.Errorf("progress was not saved: %w", err)
			}
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "reset <track>",
		Short: "Mark every task of a track as pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := domain.ParseTrack(args[0])
			if err != nil {
				return err
			}
			rm, err := app.Roadmaps.Reset(cmd.Context(), track)
			var writeErr *domain.StorageWriteError
			if err != nil && !errors.As(err, &writeErr) {
				return loadFailure(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReset(track, rm.Stats))
			if writeErr != nil {
				return fmt.Errorf("reset was not saved: %w", err)
			}
			if history {
				if err := app.Trends.ClearHistory(cmd.Context(), track); err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Progress history cleared."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "Also drop the recorded progress history")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export <track>",
		Short: "Write a track's roadmap document as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := domain.ParseTrack(args[0])
			if err != nil {
				return err
			}
			f, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}
			rm, err := app.Roadmaps.Load(cmd.Context(), track)
			if err != nil {
				return loadFailure(err)
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer file.Close()
				w = file
			}
			return codec.Write(w, rm, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <track> <file>",
		Short: "Replace a track's saved progress with a roadmap document",
		Long:  "Replace a track's saved progress with a JSON roadmap document. Use - to read from stdin.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			track, err := domain.ParseTrack(args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[1] != "-" {
				file, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[1], err)
				}
				defer file.Close()
				r = file
			}

			rm, err := app.Roadmaps.Import(cmd.Context(), track, r)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(track, rm))
			return nil
		},
	}
}
