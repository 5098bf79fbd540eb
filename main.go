package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	// Format decoder Registrations Side-Effect import
	_ "github.com/Phaust94/sqlite-interface/ingest"

	u "github.com/araddon/gou"

	"github.com/Phaust94/sqlite-interface/frontends/telegram"
	"github.com/Phaust94/sqlite-interface/models"
)

var (
	configFile *string = flag.String("config", "tablebot.conf", "bot config file")
	logLevel   *string = flag.String("loglevel", "debug", "log level [debug|info|warn|error]")
)

func main() {

	flag.Parse()

	if len(*configFile) == 0 {
		u.Errorf("must use a config file")
		return
	}
	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	// get config
	conf, err := models.LoadConfigFromFile(*configFile)
	if err != nil {
		u.Errorf("Could not load config: %v", err)
		os.Exit(1)
	}
	if err = conf.Validate(); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	if conf.LogLevel != "" {
		u.SetupLogging(conf.LogLevel)
	}

	svr, err := telegram.NewServer(conf)
	if err != nil {
		u.Errorf("Could not create telegram frontend: %v", err)
		os.Exit(1)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		sig := <-sc
		u.Infof("Got signal [%v] to exit.", sig)
		svr.Shutdown()
	}()

	svr.Run()
}
