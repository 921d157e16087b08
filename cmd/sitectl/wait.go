package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mhasan05/teamerror-portfolio/client"
)

func (a *app) newWaitCmd() *cobra.Command {
	var maxWait, initial time.Duration

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Block until the content API answers /company-info/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), maxWait)
			defer cancel()

			start := time.Now()
			attempts, err := waitForAPI(ctx, a.client, initial)
			if err != nil {
				return fmt.Errorf("content API at %s not ready after %d attempts: %w", a.client.BaseURL(), attempts, err)
			}
			log.Info().Str("api", a.client.BaseURL()).Int("attempts", attempts).Dur("elapsed", time.Since(start)).Msg("content API ready")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ready")
			return err
		},
	}
	cmd.Flags().DurationVar(&maxWait, "max-wait", 60*time.Second, "Give up after this long")
	cmd.Flags().DurationVar(&initial, "interval", 500*time.Millisecond, "Initial delay between probes")
	return cmd
}

type companyFetcher interface {
	GetCompanyInfo(ctx context.Context) (*client.CompanyInfo, error)
}

// waitForAPI probes until the company profile decodes, backing off
// exponentially between attempts. Decode failures are not retried: the server
// is up but speaking something else.
func waitForAPI(ctx context.Context, c companyFetcher, initial time.Duration) (int, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	exp.Multiplier = 2
	exp.MaxInterval = 10 * time.Second
	exp.MaxElapsedTime = 0 // bounded by ctx
	exp.Reset()

	attempts := 0
	for {
		attempts++
		_, err := c.GetCompanyInfo(ctx)
		if err == nil {
			return attempts, nil
		}
		if errors.Is(err, client.ErrDecode) {
			return attempts, err
		}

		wait := exp.NextBackOff()
		log.Debug().Err(err).Int("attempt", attempts).Dur("next", wait).Msg("content API not ready")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return attempts, errors.Join(ctx.Err(), err)
		}
	}
}
