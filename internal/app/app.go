package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"ipinspect/internal/app/cli"
	"ipinspect/internal/config"
)

// Run loads configuration and executes the command line given in args
// (without the program name).
func Run(args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found. Falling back to system environment variables.")
	}

	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
