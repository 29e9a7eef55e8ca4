package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amterp/ra"
	"github.com/swatchfile/swatch/internal/api"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the local palette API")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(4040).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	// Make sure the data file exists before the watcher starts
	if err := app.ColorStore.EnsureFile(); err != nil {
		Fatal(err)
	}

	handler := api.NewHandler(app.Palette)
	server := api.NewServer(handler, port, app.Paths)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	PrintInfo("Listening on http://localhost%s", server.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			Fatal(err)
		}
	case <-sigCh:
		PrintInfo("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			Fatal(err)
		}
	}
}
