package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-app/inkwell-launch/internal/cliconfig"
	"github.com/inkwell-app/inkwell-launch/internal/domain"
	"github.com/inkwell-app/inkwell-launch/internal/invocation"
	"github.com/inkwell-app/inkwell-launch/internal/launcher"
)

const helpDescription = `
Launch inkwell, or hand the current arguments to the instance that is
already running.

The launcher connects to the instance socket in the user cache
directory. If an instance answers, the arguments are forwarded over the
socket and this process exits; if nothing is listening, a fresh
instance is started with the same arguments.

Every argument is passed through untouched; the launcher has no flags
of its own. Configuration lives in <config dir>/inkwell/launch.toml and
INKWELL_LAUNCH_* environment variables.
`

var exampleUsage = strings.TrimSpace(`
  inkwell-launch
  inkwell-launch notes/draft.md
  inkwell-launch --new-window notes/draft.md   (flag is inkwell's, not the launcher's)
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "inkwell-launch [arguments...]",
		Short:   "Start inkwell or forward arguments to the running instance",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		// Every argv token belongs to inkwell, including anything that
		// looks like a flag.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cliconfig.DefaultConfig()

			if path := cliconfig.DefaultConfigPath(); path != "" && cliconfig.FileExists(path) {
				fc, err := cliconfig.LoadFileConfig(path)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			cliconfig.SetDebug(cfg.Debug)
			log = cliconfig.Logger()
			log.Debug().
				Str("version", fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH)).
				Msg("inkwell-launch")

			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve own executable: %w", err)
			}
			ctx, err := invocation.Resolve(execPath, runtime.GOOS, os.Getenv, args)
			if err != nil {
				return err
			}
			if cfg.SocketPath != "" || cfg.InstancePath != "" {
				socket := ctx.SocketPath()
				instance := ctx.InstancePath()
				if cfg.SocketPath != "" {
					socket = cfg.SocketPath
				}
				if cfg.InstancePath != "" {
					instance = cfg.InstancePath
				}
				ctx = invocation.NewContext(socket, instance, args)
			}

			outcome, err := launcher.New(cfg, log).Run(ctx)
			if err != nil {
				return err
			}
			switch outcome {
			case launcher.OutcomeForwarded:
				log.Debug().Msg("arguments accepted by running instance")
			case launcher.OutcomeSpawned:
				log.Debug().Msg("started a fresh instance")
			}
			return nil
		},
	}
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		// One diagnostic line with the error kind name, then exit 1.
		if kind, ok := domain.KindOf(err); ok {
			log.Error().Err(err).Str("kind", string(kind)).Msg("inkwell-launch")
		} else {
			log.Error().Err(err).Msg("inkwell-launch")
		}
		os.Exit(1)
	}
}
