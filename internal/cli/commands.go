package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/render/htmlview"
	"github.com/Makepad-fr/tada/internal/render/markdown"
	"github.com/Makepad-fr/tada/internal/render/panel"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

func (e *env) panel(opt panel.Options) render.Renderer {
	return panel.New(e.stdout, e.theme, opt)
}

func newAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErr("usage: tada add <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, st, err := e.session(ctx, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			o.SetRenderer(e.panel(panel.Options{}))
			res, err := o.SubmitNewEntry(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !res.Accepted {
				return silentExit(exitUsage)
			}
			ui.OK(e.stdout, e.theme, "added")
			return nil
		},
	}
}

func newListCmd(e *env) *cobra.Command {
	var group, md bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r render.Renderer = e.panel(panel.Options{Group: group, Tip: true})
			if md {
				r = markdown.NewStyled(e.stdout, 80)
			}
			_, st, err := e.session(cmd.Context(), r, nil)
			if err != nil {
				return err
			}
			return st.Close()
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	cmd.Flags().BoolVar(&md, "markdown", false, "render as a markdown checklist")
	return cmd
}

func newDoneCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "done <index>",
		Aliases: []string{"toggle"},
		Short:   "Toggle done for item at 1-based index",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErr("usage: tada done <index>")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return usageErr("done: not a number: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])
			ctx := cmd.Context()
			o, st, err := e.session(ctx, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			o.SetRenderer(e.panel(panel.Options{}))
			if err := o.ToggleAt(ctx, n); err != nil {
				if errors.Is(err, app.ErrIndexOutOfRange) {
					ui.Fail(e.stderr, e.theme, err.Error())
					fmt.Fprintln(e.stderr, e.theme.Muted.Render("Hint: run `tada ls` to see valid indexes"))
					return silentExit(exitUsage)
				}
				return err
			}
			ui.OK(e.stdout, e.theme, "toggled")
			return nil
		},
	}
}

func newClearCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, st, err := e.session(ctx, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			o.SetRenderer(e.panel(panel.Options{}))
			if err := o.ClearAllEntries(ctx); err != nil {
				return err
			}
			ui.OK(e.stdout, e.theme, "cleared")
			return nil
		},
	}
}

func newSortCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort pending before done, then alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, st, err := e.session(ctx, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			o.SetRenderer(e.panel(panel.Options{}))
			if err := o.SortEntries(ctx); err != nil {
				return err
			}
			ui.OK(e.stdout, e.theme, "sorted")
			return nil
		},
	}
}

func newTUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"i"},
		Short:   "Interactive list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess := tui.NewSession(e.theme)
			o, st, err := e.session(ctx, sess.Renderer(), sess.Notifier(), app.WithErrorHandler(sess.ReportError))
			if err != nil {
				return err
			}
			defer st.Close()

			if err := sess.Run(ctx, o); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func newExportCmd(e *env) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as json, html or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(format) {
			case "json", "html", "md", "markdown":
			default:
				return usageErr("export: unknown format %q (want json, html or markdown)", format)
			}
			ctx := cmd.Context()
			o, st, err := e.session(ctx, nil, nil)
			if err != nil {
				return err
			}
			defer st.Close()

			if out == "" || out == "-" {
				return writeExport(e.stdout, format, o)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := writeExport(f, format, o); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, html or markdown")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func writeExport(w io.Writer, format string, o *app.Orchestrator) error {
	items := o.List().Items()
	switch strings.ToLower(format) {
	case "json":
		b, err := store.Encode(o.List().Snapshot())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "html":
		return htmlview.NewDocument(w).Render(items, nil)
	default:
		return markdown.New(w).Render(items, nil)
	}
}

func newConfigCmd(e *env) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if err := e.cfg.Save(e.cfgPath); err != nil {
					return err
				}
				ui.OK(e.stdout, e.theme, "wrote "+e.cfgPath)
				return nil
			}
			enc := yaml.NewEncoder(e.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(e.cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration to the --config file")
	return cmd
}
