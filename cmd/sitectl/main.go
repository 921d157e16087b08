package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mhasan05/teamerror-portfolio/client"
	"github.com/mhasan05/teamerror-portfolio/internal/config"
	"github.com/mhasan05/teamerror-portfolio/internal/logger"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries state shared by all sub-commands once the root pre-run has
// loaded configuration.
type app struct {
	cfg    *config.Config
	client *client.Client

	apiURL   string
	siteHost string
	timeout  time.Duration
	debug    bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "sitectl",
		Short:         "Query the TeamError content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "Content API base URL; overrides resolution")
	flags.StringVar(&a.siteHost, "site-host", "", "Host name the site is served from (selects production when it is teamerror.net)")
	flags.DurationVar(&a.timeout, "timeout", 0, "HTTP timeout per request (default from TEAMERROR_HTTP_TIMEOUT)")
	flags.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(
		a.newResolveCmd(),
		a.newServicesCmd(),
		a.newPortfolioCmd(),
		a.newTestimonialsCmd(),
		a.newContactCmd(),
		a.newCompanyCmd(),
		a.newTeamCmd(),
		a.newJobsCmd(),
		a.newPostsCmd(),
		a.newWaitCmd(),
	)
	return rootCmd
}

// init loads env configuration, applies explicitly set flags and builds the client.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = a.apiURL
	}
	if flags.Changed("site-host") {
		cfg.SiteHost = a.siteHost
	}
	if flags.Changed("timeout") {
		cfg.HTTPTimeout = a.timeout
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Console(cfg.Level())
	cfg.LogFields(log.Debug()).Msg("configuration loaded")

	c, err := cfg.NewClient()
	if err != nil {
		return err
	}
	a.cfg, a.client = cfg, c
	return nil
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

// requestContext bounds a command by the configured timeout, leaving headroom
// for the transport's own deadline to fire first.
func (a *app) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.HTTPTimeout+time.Second)
}
