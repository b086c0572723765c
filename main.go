package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/cli"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/client"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/config"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/session"
	"github.com/sanketrautel17-hash/Home-Cleaning-Service/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	// Commands inherit this context; Ctrl-C cancels any in-flight
	// request instead of leaving it running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(config.AppConfig.TokenFile)
	api := client.New(
		config.AppConfig.APIBaseURL,
		store,
		logger,
		time.Duration(config.AppConfig.HTTPTimeoutSeconds)*time.Second,
	)

	manager := session.NewManager(api, store, logger)
	manager.Resolve(ctx)

	app := &cli.App{
		Session:      manager,
		API:          api,
		Out:          os.Stdout,
		In:           os.Stdin,
		Logger:       logger,
		CallbackAddr: config.AppConfig.OAuthCallbackAddr,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
