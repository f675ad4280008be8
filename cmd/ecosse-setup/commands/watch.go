package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/logging"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <study>",
	Short: "Show a study's settings again whenever its file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	store := storage.NewOs()
	s, err := newSession(store)
	if err != nil {
		return err
	}

	show := func() {
		// each change gets a fresh form so nothing carries over
		fresh, err := newSession(store)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		path, err := fresh.load(args[0])
		if err != nil && !incomplete(err) {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		printForm(cmd.OutOrStdout(), fresh.form, path)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
		}
	}
	show()

	w, err := watch.NewWatcher(s.settingsPath(args[0]), func(path string) {
		logging.Info().Str("file", path).Msg("settings file changed")
		show()
	})
	if err != nil {
		return err
	}
	w.Start()
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	return nil
}
