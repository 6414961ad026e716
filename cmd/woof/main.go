package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/woof/cmds"
	"github.com/reusee/woof/debugs"
	"github.com/reusee/woof/logs"
	"github.com/reusee/woof/modes"
	"github.com/reusee/woof/sources"
	"github.com/reusee/woof/syncs"
	"github.com/reusee/woof/vars"
	"github.com/reusee/woof/woofconfigs"
	"github.com/reusee/woof/wooflang"
)

var (
	printForms = cmds.Switch("print")
	tapForms   = cmds.Switch("tap")
	numJobs    = cmds.Var[int]("jobs")
)

func main() {
	args := cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		load sources.Load,
		tap debugs.Tap,
		withSource woofconfigs.DiagnosticSource,
	) {

		if len(args) == 0 {
			args = []string{"-"}
		}

		type result struct {
			forms []wooflang.Node
			err   error
		}
		results := make([]result, len(args))

		sem := syncs.NewSemaphore(vars.FirstNonZero(*numJobs, 4))
		var wg sync.WaitGroup
		for i, arg := range args {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()

				ctx, _ := newSpan(ctx, "")

				source, err := load(ctx, arg)
				if err != nil {
					results[i].err = logs.WrapSpan(ctx, err)
					return
				}

				forms, err := wooflang.Parse(source, &wooflang.Options{
					Sink: func(node wooflang.Node) {
						logger.DebugContext(ctx, "form",
							"source", source.Name,
							"text", wooflang.Print(node),
						)
					},
				})
				results[i] = result{forms: forms, err: err}
				if err == nil {
					logger.InfoContext(ctx, "parsed",
						"source", source.Name,
						"forms", len(forms),
					)
				}
			}()
		}
		wg.Wait()

		exit := 0
		var allForms []wooflang.Node
		for _, res := range results {
			if res.err != nil {
				if diag, ok := res.err.(*wooflang.Diagnostic); ok && !bool(withSource) {
					fmt.Fprintln(os.Stderr, diag.Summary())
				} else {
					fmt.Fprintln(os.Stderr, res.err.Error())
				}
				exit = 1
				continue
			}
			allForms = append(allForms, res.forms...)
			if *printForms {
				fmt.Println(wooflang.PrintProgram(res.forms))
			}
		}

		if *tapForms && exit == 0 {
			tap(ctx, "forms", map[string]any{
				"forms": allForms,
				"count": len(allForms),
			})
		}

		os.Exit(exit)
	})
}
