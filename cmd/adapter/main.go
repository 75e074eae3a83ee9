package main

import (
	"context"
	"encoding/json"
	"eventers-legacy-adapter/adapter"
	"eventers-legacy-adapter/config"
	c "eventers-legacy-adapter/context"
	"eventers-legacy-adapter/legacy"
	"eventers-legacy-adapter/logger"
	"eventers-legacy-adapter/router"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/codegangsta/negroni"
	"github.com/spf13/viper"
)

func main() {
	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	once := flag.Bool("once", false, "Print the adapted legacy event and exit")
	flag.Parse()

	ctx := c.WithCorrelationID(context.Background(), c.DefaultCorrelationID)

	if err := config.Load(*cfgPath); err != nil {
		logger.Fatalf(ctx, "main: error loading config: %+v", err)
	}

	if err := logger.Configure(viper.GetString(config.LogLevel), viper.GetString(config.LogFormat)); err != nil {
		logger.Fatalf(ctx, "main: %+v", err)
	}

	service := adapter.New(legacy.NewStub())

	if *once {
		if err := printEvent(ctx, os.Stdout, service); err != nil {
			os.Exit(1)
		}
		return
	}

	n := negroni.New()
	n.UseHandler(router.Router(service))
	logger.Infof(ctx, "listening on %s", viper.GetString(config.Port))
	n.Run(viper.GetString(config.Port))
}

func printEvent(ctx context.Context, w io.Writer, service *adapter.Adapter) error {
	event, err := service.FetchEventDetails(ctx)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return fmt.Errorf("printEvent: error marshalling event: %w", err)
	}
	_, err = fmt.Fprintf(w, "Event details in modern format:\n%s\n", b)
	return err
}
