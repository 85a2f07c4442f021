package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"sankalp/internal/store"
	"sankalp/internal/submission"
)

const (
	cfgKeyDataDir = "data_dir"
	cfgKeyVerbose = "verbose"

	defaultDataDir = "./data"
)

// app carries what every subcommand needs once the root has resolved flags.
type app struct {
	fs       afero.Fs
	v        *viper.Viper
	logger   *zap.Logger
	registry *submission.Registry
	store    *store.Store
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}
	a.v.SetDefault(cfgKeyDataDir, defaultDataDir)
	_ = a.v.BindEnv(cfgKeyDataDir, "DATA_DIR")

	root := &cobra.Command{
		Use:           "datactl",
		Short:         "Inspect and curate the form collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().String("data-dir", "", "data directory (default: $DATA_DIR or ./data)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log storage activity to stderr")
	_ = a.v.BindPFlag(cfgKeyDataDir, root.PersistentFlags().Lookup("data-dir"))
	_ = a.v.BindPFlag(cfgKeyVerbose, root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		newInitCmd(a),
		newListCmd(a),
		newApproveCmd(a),
		newUnsubscribeCmd(a),
		newSetStatusCmd(a),
	)
	return root
}

// open resolves the data directory (--data-dir > DATA_DIR > ./data) and
// wires the registry onto it.
func (a *app) open() error {
	a.logger = zap.NewNop()
	if a.v.GetBool(cfgKeyVerbose) {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.logger = logger
	}

	dir := a.v.GetString(cfgKeyDataDir)
	if dir == "" {
		dir = defaultDataDir
	}
	st, err := store.Open(a.fs, dir, a.logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = st
	a.registry = submission.NewRegistry(st)
	return nil
}
