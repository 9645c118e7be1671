package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/javanotes/sitenav/cmd/sitenav/commands"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("sitenav"),
		kong.Description("Navigation configuration for the Java source notes site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := commands.NewGlobal()
	err := ctx.Run(global, &cli)
	if flushErr := global.Flush(); flushErr != nil {
		slog.Warn("Failed to write metrics", logfields.Error(flushErr))
	}
	if err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
