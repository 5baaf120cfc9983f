package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"source.hodakov.me/hdkv/wavetunes/internal/application"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
	"source.hodakov.me/hdkv/wavetunes/internal/domains/dispatcher"
	"source.hodakov.me/hdkv/wavetunes/internal/domains/encoder"
	"source.hodakov.me/hdkv/wavetunes/internal/domains/scanner"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path_to_folder_with_wav_files>\n", os.Args[0])
		os.Exit(1)
	}

	sourceDir := os.Args[1]

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := application.New(ctx)

	app.Logger().Info("Starting wavetunes...")

	err := app.InitConfig()
	if err != nil {
		app.Logger().Fatal(err)
	}

	app.InitLogger()

	app.RegisterDomain(domains.ScannerName, scanner.New(app, sourceDir))
	app.RegisterDomain(domains.EncoderName, encoder.New(app))
	app.RegisterDomain(domains.DispatcherName, dispatcher.New(app))

	err = app.ConnectDependencies()
	if err != nil {
		app.Logger().Fatal(err)
	}

	err = app.StartDomains()
	if err != nil {
		app.Logger().Fatal(err)
	}

	dispatcherDomain, ok := app.RetrieveDomain(domains.DispatcherName).(domains.Dispatcher)
	if !ok {
		app.Logger().Fatal("Dispatcher domain interface conversion failed")
	}

	// Per-job failures are logged by the workers and do not change the
	// exit status. Only a failed enumeration does.
	err = dispatcherDomain.Run(ctx)
	if err != nil {
		app.Logger().Fatal(err)
	}

	os.Exit(0)
}
