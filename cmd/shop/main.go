package main

import (
	"context"
	"time"

	"github.com/niksmo/kitchen-store/config"
	"github.com/niksmo/kitchen-store/internal/app"
	"github.com/niksmo/kitchen-store/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext(context.Background())
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	shop := app.New(sigCtx, cfg)

	shop.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	shop.Close(ctx)
}
