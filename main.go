package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lonng/mjrecorder/internal/board"
	"github.com/lonng/mjrecorder/internal/console"
	"github.com/lonng/mjrecorder/internal/hooks"
	"github.com/lonng/mjrecorder/internal/recorder"
	"github.com/lonng/mjrecorder/internal/setting"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "mjrecorder"
	app.Author = "MaJong"
	app.Version = "0.1.0"
	app.Copyright = "majong team reserved"
	app.Usage = "majiang point recorder"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "play",
			Usage: "apply scoring commands and print the board",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "script, s",
					Usage: "read commands from `FILE` instead of stdin",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: "print the board only once, after the last command",
				},
				cli.BoolFlag{
					Name:  "json",
					Usage: "print json lines",
				},
			},
			Action: play,
		},
		{
			Name:  "wintypes",
			Usage: "list the win types and their base points",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json",
					Usage: "print json",
				},
			},
			Action: winTypes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (*setting.Game, error) {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})

	viper.SetConfigType("toml")
	viper.SetConfigFile(c.GlobalString("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("读取配置文件失败, 使用默认配置: %v", err)
	}

	g, err := setting.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if g.Debug {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}
	return g, nil
}

func play(c *cli.Context) error {
	g, err := setup(c)
	if err != nil {
		return err
	}

	s := console.NewSession(os.Stdout, console.Quiet(c.Bool("quiet")), console.JSON(c.Bool("json")))
	rec, err := g.Recorder(recorder.WithLogger(s.Logger()))
	if err != nil {
		return err
	}
	s.Attach(rec)

	var in io.Reader = os.Stdin
	if script := c.String("script"); script != "" {
		f, err := os.Open(script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s.Logger().Infof("开始记分: 玩家=%v 庄家=%s", rec.Players(), rec.CurrentBoss())
	if err := s.Run(in); err != nil {
		return err
	}

	if n := s.Failed(); n > 0 {
		return cli.NewExitError(fmt.Sprintf("%d command(s) failed", n), 1)
	}
	return nil
}

func winTypes(c *cli.Context) error {
	g, err := setup(c)
	if err != nil {
		return err
	}

	table, err := recorder.NewTable(g.WinTypes)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return json.NewEncoder(os.Stdout).Encode(board.TableInfo(table))
	}
	return board.RenderTable(os.Stdout, table)
}
