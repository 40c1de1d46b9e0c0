// Command nerfdemo shows a small nerf widget tree: rendered to PNG, in a
// devdraw window, or in the terminal.
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VirgileHenry/nerf"
	"github.com/VirgileHenry/nerf/devdraw"
	"github.com/VirgileHenry/nerf/raster"
	"github.com/VirgileHenry/nerf/term"
)

type loggerKey struct{}

func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var themePath string

	root := &cobra.Command{
		Use:          "nerfdemo",
		Short:        "Show a small nerf widget tree",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nerfdemo", Level: level})
			nerf.SetLogger(logger.WithPrefix("nerf"))
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging, including layout diagnostics")
	root.PersistentFlags().StringVar(&themePath, "theme", "", "theme file, .yaml or .toml")

	loadTheme := func() (nerf.Theme, error) {
		if themePath == "" {
			return nerf.DefaultTheme(), nil
		}
		return nerf.LoadTheme(themePath)
	}

	root.AddCommand(newRenderCmd(loadTheme))
	root.AddCommand(newWindowCmd(loadTheme))
	root.AddCommand(newTermCmd(loadTheme))
	return root
}

func newRenderCmd(loadTheme func() (nerf.Theme, error)) *cobra.Command {
	var width, height int
	var out string
	var clicks []string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo to a PNG file, after replaying clicks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFrom(cmd.Context())
			if width <= 0 || height <= 0 {
				return fmt.Errorf("size must be positive, got %dx%d", width, height)
			}
			points := make([]image.Point, len(clicks))
			for i, s := range clicks {
				p, err := parsePoint(s)
				if err != nil {
					return fmt.Errorf("click %d: %w", i+1, err)
				}
				points[i] = p
			}
			theme, err := loadTheme()
			if err != nil {
				return err
			}

			root, c := demo(theme, pixels)
			app := nerf.NewApp(root, theme)
			canvas := raster.New(image.Pt(width, height))
			defer canvas.Close()
			app.Render(canvas)
			for _, p := range points {
				click(app, p)
			}
			app.Render(canvas)
			if err := canvas.SavePNG(out); err != nil {
				return err
			}
			logger.Info("rendered", "out", out, "clicks", len(points), "count", c.count)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 400, "image width")
	cmd.Flags().IntVar(&height, "height", 200, "image height")
	cmd.Flags().StringVarP(&out, "out", "o", "nerfdemo.png", "output file")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "click at x,y before rendering, can be repeated")
	return cmd
}

// click moves the cursor to p, presses and releases the primary button.
func click(app *nerf.App[ev], p image.Point) {
	app.Dispatch(nerf.CursorMoved[ev](p))
	app.Dispatch(nerf.MouseDown[ev](nerf.ButtonPrimary))
	app.Dispatch(nerf.MouseUp[ev](nerf.ButtonPrimary))
}

func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

func newWindowCmd(loadTheme func() (nerf.Theme, error)) *cobra.Command {
	var dim string
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the demo in a devdraw window",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme()
			if err != nil {
				return err
			}
			root, _ := demo(theme, pixels)
			host, err := devdraw.New("nerfdemo", dim, nerf.NewApp(root, theme))
			if err != nil {
				return err
			}
			loggerFrom(cmd.Context()).Debug("window open", "dim", dim)
			return host.Run()
		},
	}
	cmd.Flags().StringVar(&dim, "dim", "400x200", "initial window size")
	return cmd
}

func newTermCmd(loadTheme func() (nerf.Theme, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Show the demo in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := loadTheme()
			if err != nil {
				return err
			}
			root, _ := demo(theme, cells)
			// Logs would garble the screen.
			nerf.SetLogger(log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel}))
			return term.Run(nerf.NewApp(root, theme))
		},
	}
}
