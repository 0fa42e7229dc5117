package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/thorvi/playtrack/internal/record"
	"github.com/thorvi/playtrack/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API",
	RunE:  runAPI,
}

func runAPI(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	client := record.NewHTTPClient(conf.RecordStoreURL, conf.Logger)

	srv, err := server.NewHTTPServer(conf, client)
	if err != nil {
		return err
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Start()
	}()

	conf.Logger.Info("api listening",
		zap.Int("port", conf.Port),
		zap.String("record_store", conf.RecordStoreURL))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-stop:
		conf.Logger.Info("shutting down")
		return srv.Stop()
	}
}
