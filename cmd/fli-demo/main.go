package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/fli"
	"github.com/napalu/fli/render"
	"github.com/napalu/fli/types"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("FLI_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app, err := fli.NewApp("fli-demo", "0.1.0", "demonstrates command resolution",
		fli.WithLogger(logger),
		fli.WithHelpHandler(render.HelpHandler(os.Stdout)),
		fli.WithVersionHandler(render.VersionHandler(os.Stdout)),
		fli.WithOption("verbose", "print the resolved chain", "v", "", types.None(), fli.AsInheritable()),
		fli.WithOption("tree", "print the command tree", "", "", types.None(),
			fli.WithPreservedCallback(func(ctx *fli.Context) error {
				return render.Tree(os.Stdout, ctx.App(), nil)
			})),
		fli.WithCommand("greet", "greet someone",
			fli.WithCommandOption("times", "repetitions", "t", "", types.OptionalSingle(types.Int(1))),
			fli.WithExpectedPositionalArgs(1),
			fli.WithCallback(greet)),
		fli.WithCommand("sum", "add numbers",
			fli.WithCommandOption("numbers", "numbers to add", "n", "", types.RequiredMultiple(types.Unbounded, types.Float(0))),
			fli.WithCallback(sum)),
		fli.WithCommand("remote", "manage remotes",
			fli.WithSubcommand("add", "add a remote",
				fli.WithExpectedPositionalArgs(2),
				fli.WithCallback(func(ctx *fli.Context) error {
					args := ctx.Arguments()
					fmt.Printf("added %s -> %s\n", args[0], args[1])
					return nil
				})),
			fli.WithSubcommand("list", "list remotes", fli.WithCallback(func(ctx *fli.Context) error {
				fmt.Println("origin")
				return nil
			}))),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Execute(); err != nil {
		_ = render.NewRenderer().ErrorWithHint(os.Stderr, app, err)
		os.Exit(1)
	}
}

func chain(ctx *fli.Context) {
	if !ctx.Flag("verbose") {
		return
	}
	for _, el := range ctx.Chain() {
		fmt.Fprintf(os.Stderr, "%*s%s %s\n", el.Depth*2, "", el.Name, el.Value)
	}
}

func greet(ctx *fli.Context) error {
	chain(ctx)
	name, _ := ctx.ArgumentAt(0)
	times, _ := ctx.OptionValue("times")
	v, _ := times.AsSingle()
	n, _ := v.AsInt()
	for i := int64(0); i < n; i++ {
		fmt.Printf("hello %s\n", name)
	}

	return nil
}

func sum(ctx *fli.Context) error {
	chain(ctx)
	numbers, _ := ctx.OptionValue("numbers")
	values, _ := numbers.AsMany()
	var total float64
	parts := make([]string, 0, len(values))
	for _, v := range values {
		f, _ := v.AsFloat()
		total += f
		parts = append(parts, v.String())
	}
	fmt.Printf("%s = %g\n", strings.Join(parts, " + "), total)

	return nil
}
