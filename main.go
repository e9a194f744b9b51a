package main

import (
	"fmt"
	"os"

	"github.com/tidal-labs/coinsim/agents"
	"github.com/tidal-labs/coinsim/config"
	"github.com/tidal-labs/coinsim/engine"
	"github.com/tidal-labs/coinsim/log"
	"github.com/urfave/cli/v2"
)

var (
	configPath string
	logLevels  string
)

func main() {
	app := cli.NewApp()
	app.Name = "coinsim"
	app.Usage = "replay trading decisions against historical candle data"
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:  "run",
			Usage: "execute a simulation from a run config",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "config",
					Aliases:     []string{"c"},
					Usage:       "path to the run config",
					Required:    true,
					Destination: &configPath,
				},
				&cli.StringFlag{
					Name:        "log-levels",
					Value:       "INFO|WARN|ERROR",
					Usage:       "pipe separated log levels to enable",
					Destination: &logLevels,
				},
			},
			Action: runSimulation,
		},
		{
			Name:   "agents",
			Usage:  "list the available agents",
			Action: listAgents,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSimulation(_ *cli.Context) error {
	log.SetGlobalLevels(logLevels)

	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}

	bt, err := engine.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	stat, err := bt.Run()
	if err != nil {
		return err
	}
	stat.PrintResult()
	return nil
}

func listAgents(_ *cli.Context) error {
	for _, a := range agents.GetAgents() {
		fmt.Printf("%s\n\t%s\n", a.Name(), a.Description())
	}
	return nil
}
