package main

import (
	"context"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	"zupos"
	nt "zupos/entity"
	"zupos/message"
	"zupos/store/duck"
	"zupos/util"
)

func runScreen(ctx context.Context) (err error) {

	cfg, err := loadConfig()
	if err != nil {
		return
	}

	file := util.OpenLog(cfg.LogFile, fileMode)
	defer util.CloseLog(file)
	lgr := newLogger(file)

	dk, err := openStore(ctx, cfg, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	toasts := cfg.Toast.New()
	defer toasts.Close()

	model := cfg.New(ctx, dk, toasts, lgr)
	p := tea.NewProgram(model)

	// expiry fires off the ui goroutine
	toasts.OnChange(func() {
		p.Send(message.RefreshMsg{})
	})

	lgr.Info(ctx, "starting", "config", cfgPath, "source", dk.Name())

	_, err = p.Run()
	err = errors.Wrapf(err, "screen failed")
	return
}

func loadConfig() (cfg zupos.Config, err error) {

	err = util.SampleConfig(zupos.SampleConfig, cfgPath, fileMode)
	if err != nil {
		return
	}

	cfg, err = zupos.LoadConfig(cfgPath)
	return
}

func newLogger(w io.Writer) nt.Logger {
	return &sabot.Sabot{Writer: w}
}

func openStore(ctx context.Context, cfg zupos.Config, lgr nt.Logger) (dk *duck.Duck, err error) {

	dk, err = duck.New(ctx, lgr)
	if err != nil {
		return
	}

	if cfg.Seed == "" {
		return
	}

	err = dk.Load(ctx, cfg.Seed)
	if err != nil {
		dk.Close()
		dk = nil
	}
	return
}
