package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/alwinb/whatwg-url/browser"
	"github.com/alwinb/whatwg-url/cliout"
	"github.com/alwinb/whatwg-url/logutil"
	"github.com/alwinb/whatwg-url/mcptool"
	"github.com/alwinb/whatwg-url/urlmetrics"
	"github.com/alwinb/whatwg-url/version"
	"github.com/alwinb/whatwg-url/whatwgurl"
)

// errNoBase is returned by resolve when neither --base nor the config
// provides a base URL.
var errNoBase = errors.New("no base URL: pass --base or set base in the config file")

// timed runs fn and records it under operation.
func timed[T any](operation string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	urlmetrics.RecordParse(operation, time.Since(start), err)
	return v, err
}

func newURL(input, base string) (*whatwgurl.URL, error) {
	if base == "" {
		return whatwgurl.New(input)
	}
	return whatwgurl.NewWithBase(input, base)
}

func printComponents(c whatwgurl.Components) error {
	return cliout.Print(c, func() {
		cliout.Header(c.Href)
		cliout.Label("Protocol", c.Protocol)
		cliout.Label("Username", c.Username)
		cliout.Label("Password", c.Password)
		cliout.Label("Hostname", c.Hostname)
		cliout.Label("Port", c.Port)
		cliout.Label("Pathname", c.Pathname)
		cliout.Label("Search", c.Search)
		cliout.Label("Hash", c.Hash)
		cliout.Label("Origin", c.Origin)
	})
}

func (a *app) newParseCommand() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its components",
		Example: `  whatwg-url parse 'HTTP://EXAMPLE.com/a/../b?q#f'
  whatwg-url parse ../x --base http://example.com/a/b -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := timed("parse", func() (*whatwgurl.URL, error) {
				return newURL(args[0], base)
			})
			if err != nil {
				return err
			}
			return printComponents(u.Components())
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base URL to resolve against")
	return cmd
}

func (a *app) newResolveCommand() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "resolve <ref>",
		Short: "Resolve a URL reference against a base URL",
		Example: `  whatwg-url resolve ../c --base http://example.com/a/b/
  WHATWG_URL_BASE=http://example.com/ whatwg-url resolve //other.test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if base == "" {
				base = a.cfg.Base
			}
			if base == "" {
				return errNoBase
			}
			u, err := timed("resolve", func() (*whatwgurl.URL, error) {
				return whatwgurl.NewWithBase(args[0], base)
			})
			if err != nil {
				return err
			}
			href := u.Href()
			return cliout.Print(map[string]string{"href": href}, func() {
				cliout.Plain("%s", href)
			})
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base URL (defaults to the configured base)")
	return cmd
}

func (a *app) newOriginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "origin <url>",
		Short: "Print the origin of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := timed("origin", func() (*whatwgurl.URL, error) {
				return whatwgurl.New(args[0])
			})
			if err != nil {
				return err
			}
			origin := u.Origin()
			return cliout.Print(map[string]string{"origin": origin}, func() {
				cliout.Plain("%s", origin)
			})
		},
	}
}

func (a *app) newHostCommand() *cobra.Command {
	var opaque bool
	cmd := &cobra.Command{
		Use:   "host <input>",
		Short: "Parse a host and print its serialization and kind",
		Example: `  whatwg-url host 0x7f.1
  whatwg-url host '[0:0::1]'
  whatwg-url host 'Ex%41mple' --opaque`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := timed("host", func() (mcptool.HostResult, error) {
				h, err := whatwgurl.ParseHost(args[0], opaque)
				if err != nil {
					return mcptool.HostResult{}, err
				}
				return mcptool.HostResult{Host: whatwgurl.SerializeHost(h), Kind: h.Kind().String()}, nil
			})
			if err != nil {
				return err
			}
			return cliout.Print(res, func() {
				cliout.Label("Host", res.Host)
				cliout.Label("Kind", res.Kind)
			})
		},
	}
	cmd.Flags().BoolVar(&opaque, "opaque", false, "Parse as the host of a non-special URL")
	return cmd
}

func (a *app) newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <url> <property> <value>",
		Short: "Assign one URL property and print the result",
		Long: fmt.Sprintf(`Assign one URL property and print the resulting href.

Properties: %v

Values a setter cannot apply leave the URL unchanged, as in a browser.`, whatwgurl.Properties),
		Example: `  whatwg-url set http://example.com/ port 8080
  whatwg-url set http://example.com/ pathname '/a b'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := timed("parse", func() (*whatwgurl.URL, error) {
				return whatwgurl.New(args[0])
			})
			if err != nil {
				return err
			}
			before := u.Href()
			if err := u.Set(args[1], args[2]); err != nil {
				return err
			}
			res := mcptool.SetResult{Components: u.Components(), Changed: u.Href() != before}
			urlmetrics.RecordSetter(args[1], res.Changed)
			return cliout.Print(res, func() {
				cliout.Plain("%s", res.Href)
				if !res.Changed {
					cliout.Warning("%s was not changed", args[1])
				}
			})
		},
	}
}

func (a *app) newOpenCommand() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Canonicalize an http(s) URL and open it in the default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid browser target %q: valid targets are %s", target, browser.FormatValidTargets())
			}
			t := browser.Target(target)
			href, err := timed("open", func() (string, error) {
				return browser.Launch(cmd.Context(), browser.LaunchOptions{URL: args[0], Target: t})
			})
			if err != nil {
				return err
			}
			return cliout.Print(map[string]string{"href": href}, func() {
				cliout.Info("Opening %s in %s", href, browser.GetTargetDisplayName(t))
			})
		},
	}
	cmd.Flags().StringVar(&target, "browser", string(browser.TargetDefault), "Browser target: "+browser.FormatValidTargets())
	return cmd
}

func (a *app) newMCPCommand() *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the URL operations as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logutil.NewLogger("cli").WithOperation("mcp")
			if metricsAddr != "" {
				srv := urlmetrics.CreateMetricsServer(metricsAddr)
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("metrics server failed", "addr", metricsAddr, "error", err)
					}
				}()
				defer func() { _ = srv.Close() }()
				log.Info("serving metrics", "addr", metricsAddr)
			}

			info := version.New(appName)
			srv := mcptool.New(mcptool.Options{
				Name:      appName,
				Version:   info.Version,
				RateLimit: a.cfg.MCP.RateLimit,
				Burst:     a.cfg.MCP.Burst,
			})
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, such as :9090")
	return cmd
}
