package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akmonengine/lens"
	"github.com/akmonengine/lens/actor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "simpleScene",
		Short: "Frustum culling of a scene described in a YAML file",
		Long: `Loads a camera and a set of actors from a scene file, then reports
which actors the camera sees (cull) or the camera frustum itself (frustum).
Every setting can be overridden with a LENS_ environment variable.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scene file (yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int("passes", 1, "number of culling passes, the camera turns between passes")
	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("passes", rootCmd.PersistentFlags().Lookup("passes"))

	load := func(cmd *cobra.Command) (*Config, *slog.Logger, error) {
		config, err := loadConfig(v, cfgFile)
		if err != nil {
			return nil, nil, err
		}

		level, _ := parseLevel(config.LogLevel)
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		return config, logger, nil
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "cull",
			Short: "Report the actors visible from the camera",
			RunE: func(cmd *cobra.Command, args []string) error {
				config, logger, err := load(cmd)
				if err != nil {
					return err
				}

				return runCull(cmd.OutOrStdout(), config, logger)
			},
		},
		&cobra.Command{
			Use:   "frustum",
			Short: "Report the camera basis, matrices and frustum",
			RunE: func(cmd *cobra.Command, args []string) error {
				config, _, err := load(cmd)
				if err != nil {
					return err
				}

				return writeYAML(cmd.OutOrStdout(), newFrustumReport(config.Camera.build()))
			},
		},
	)

	return rootCmd
}

func runCull(w io.Writer, config *Config, logger *slog.Logger) error {
	cam := config.Camera.build()
	scene := config.buildScene(logger)

	var entered, exited []string
	scene.Events.Subscribe(lens.VIEW_ENTER, func(event lens.Event) {
		e := event.(lens.ViewEnterEvent)
		entered = append(entered, fmt.Sprint(e.Actor.Id))
		logger.Debug("actor entered the view", slog.Any("id", e.Actor.Id), slog.String("intercept", e.Intercept.String()))
	})
	scene.Events.Subscribe(lens.VIEW_EXIT, func(event lens.Event) {
		e := event.(lens.ViewExitEvent)
		exited = append(exited, fmt.Sprint(e.Actor.Id))
		logger.Debug("actor left the view", slog.Any("id", e.Actor.Id))
	})

	report := CullReport{Actors: len(scene.Actors)}
	for pass := 0; pass < config.Passes; pass++ {
		if pass > 0 {
			config.Camera.turn(cam)
		}

		entered, exited = nil, nil
		visible := scene.Cull(cam)

		passReport := newPassReport(pass, cam, visible)
		passReport.Entered, passReport.Exited = entered, exited
		report.Passes = append(report.Passes, passReport)
	}

	logger.Info("culling done",
		slog.Int("actors", len(scene.Actors)),
		slog.Int("passes", config.Passes),
		slog.Int("visible", countVisible(scene.Actors)),
	)

	return writeYAML(w, report)
}

// countVisible counts the actors visible after the last pass
func countVisible(actors []*actor.Actor) int {
	count := 0
	for _, a := range actors {
		if a.IsVisible {
			count++
		}
	}

	return count
}
