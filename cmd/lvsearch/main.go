package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvsearch/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, version)
	stop()
	os.Exit(code)
}
