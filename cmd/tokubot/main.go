package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mymmrac/telego"

	"github.com/tokuplus/tokubot/adapters/browser_opener"
	"github.com/tokuplus/tokubot/adapters/telegram_receiver"
	"github.com/tokuplus/tokubot/adapters/telegram_sender"
	"github.com/tokuplus/tokubot/core"
	"github.com/tokuplus/tokubot/core/chat"
	"github.com/tokuplus/tokubot/core/ops"
	"github.com/tokuplus/tokubot/internal/config"
	"github.com/tokuplus/tokubot/internal/keychain"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "set-token" {
		if err := setToken(); err != nil {
			fmt.Fprintf(os.Stderr, "tokubot: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "token stored in keychain")
		return
	}

	cfg, err := config.Load(".env", keychain.Get, keychain.TokenAccount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokubot: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger(os.Stderr)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := telego.NewBot(cfg.Token,
		telego.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		telego.WithLogger(telegram_receiver.Logger(logger)),
	)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	var opener chat.Opener = &browser_opener.LogOnly{Logger: logger}
	if cfg.OpenBrowser {
		opener = browser_opener.New()
	}

	invite := &ops.InviteOp{BaseURL: cfg.InviteURL, Opener: opener, Logger: logger}
	reg, err := ops.NewRegistry(invite, ops.Defaults(logger)...)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	disp := core.NewDispatcher(reg, telegram_sender.New(bot), cfg.SelfEmail, cfg.MaxConcurrent, logger)
	recv := telegram_receiver.New(bot, func(ev chat.Event) {
		disp.Submit(ctx, ev)
	}, logger)

	logger.Info("tokubot started", "commands", strings.Join(reg.Commands(), ","))
	err = recv.Start(ctx)
	disp.Wait()
	if err != nil {
		return err
	}
	logger.Info("tokubot stopped")
	return nil
}

func setToken() error {
	fmt.Fprint(os.Stderr, "Telegram bot token: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return fmt.Errorf("empty token")
	}
	if err := keychain.Set(keychain.TokenAccount, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}
