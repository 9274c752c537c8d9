package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Gen     GenCmd           `cmd:"" help:"Generate deterministic values from a seed"`
	Seed    SeedCmd          `cmd:"" help:"Derive and inspect the seed for a value"`
	Profile ProfileCmd       `cmd:"" help:"Render generation profile files"`
	Serve   ServeCmd         `cmd:"" help:"Run the websocket draw service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pseudorandom"),
		kong.Description("Deterministic pseudo-random values and strings from arbitrary seeds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
