// Package geomcli implements the geom command, which renders scene files to
// HTML, optionally watching them for changes with live reload.
package geomcli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/unihd-cag/simple-geometry/lib/log"
	"github.com/unihd-cag/simple-geometry/lib/version"
	"github.com/unihd-cag/simple-geometry/lib/xmain"
	"github.com/unihd-cag/simple-geometry/scene"

	"cdr.dev/slog"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.Stderr(ctx)
	watchFlag, err := ms.Opts.Bool("GEOM_WATCH", "watch", "w", false, "watch for changes to input and live reload. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "h", "localhost", "host listening address when used with watch")
	portFlag := ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch opens. Setting to 0 opens no browser.")
	scaleFlag, err := ms.Opts.Float64("GEOM_SCALE", "scale", "s", 0, "scale the output. E.g., 2 to double the rendered size. 0 keeps the scale of the scene file.")
	if err != nil {
		return err
	}
	pageFlag, err := ms.Opts.Bool("GEOM_PAGE", "page", "", true, "wrap the output in a standalone HTML document. Disable to emit an embeddable fragment.")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}

	var inputPath string
	var outputPath string

	if len(ms.Opts.Flags.Args()) == 0 {
		if versionFlag != nil && *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	} else if len(ms.Opts.Flags.Args()) >= 3 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	if ms.Opts.Flags.Arg(0) == "version" {
		if len(ms.Opts.Flags.Args()) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	inputPath = ms.Opts.Flags.Arg(0)
	if len(ms.Opts.Flags.Args()) >= 2 {
		outputPath = ms.Opts.Flags.Arg(1)
	} else {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".html")
		}
	}
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			host:      *hostFlag,
			port:      *portFlag,
			inputPath: inputPath,
			scale:     *scaleFlag,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, time.Minute)
	defer cancel()

	_, err = renderFile(ctx, ms, inputPath, outputPath, *scaleFlag, *pageFlag)
	return err
}

// renderFile compiles inputPath and writes the result to outputPath. The
// rendered HTML is also returned for watch mode.
func renderFile(ctx context.Context, ms *xmain.State, inputPath, outputPath string, scale float64, page bool) (_ string, err error) {
	start := time.Now()

	html, err := render(ms, inputPath, scale, page)
	if err != nil {
		return "", err
	}

	err = ms.WritePath(outputPath, []byte(html))
	if err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	dur := time.Since(start)
	ms.Log.Success.Printf("successfully rendered %v to %v in %s", ms.HumanPath(inputPath), ms.HumanPath(outputPath), dur)
	return html, nil
}

func render(ms *xmain.State, inputPath string, scale float64, page bool) (string, error) {
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return "", err
	}

	s, err := scene.Parse(input)
	if err != nil {
		return "", err
	}
	c, err := s.Build()
	if err != nil {
		return "", err
	}
	if scale > 0 {
		c.Scale = scale
	}

	if !page {
		return c.HTML()
	}
	var sb strings.Builder
	err = c.RenderPage(&sb, filepath.Base(inputPath))
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch=false] file.json [file.html]
  %[1]s version

%[1]s reads the scene in file.json and renders it to file.html.
It defaults to file.html if an output path is not provided.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s version - Display the version

See more docs and the source code at https://github.com/unihd-cag/simple-geometry.
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
