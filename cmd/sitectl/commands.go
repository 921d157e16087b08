package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mhasan05/teamerror-portfolio/client"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the content API base URL that would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfg.APIEndpoint())
			return err
		},
	}
}

// list builds a "list" sub-command around fetch.
func list[T any](a *app, short string, fetch func(a *app, cmd *cobra.Command) ([]T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			items, err := fetch(a, cmd)
			if err != nil {
				return err
			}
			log.Debug().Int("count", len(items)).Dur("elapsed", time.Since(start)).Msg("list complete")
			return printJSON(cmd, items)
		},
	}
}

// get builds a "get <slug>" sub-command around fetch.
func get[T any](a *app, short string, fetch func(a *app, cmd *cobra.Command, slug string) (*T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := fetch(a, cmd, args[0])
			if err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("%q not found", args[0])
				}
				return err
			}
			return printJSON(cmd, item)
		},
	}
}

func (a *app) newServicesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "services", Short: "Services offered"}
	cmd.AddCommand(
		list(a, "List services", func(a *app, cmd *cobra.Command) ([]client.Service, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.ListServices(ctx)
		}),
		get(a, "Show one service", func(a *app, cmd *cobra.Command, slug string) (*client.Service, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.GetService(ctx, slug)
		}),
	)
	return cmd
}

func (a *app) newPortfolioCmd() *cobra.Command {
	var status, search, ordering string
	var featuredOnly bool

	cmd := &cobra.Command{Use: "portfolio", Short: "Portfolio projects"}
	listCmd := list(a, "List portfolio projects", func(a *app, cmd *cobra.Command) ([]client.PortfolioProject, error) {
		ctx, cancel := a.requestContext(cmd)
		defer cancel()
		filter := client.PortfolioFilter{Status: status, Search: search, Ordering: ordering}
		if cmd.Flags().Changed("featured") {
			filter.Featured = &featuredOnly
		}
		return a.client.ListPortfolio(ctx, filter)
	})
	listCmd.Flags().StringVar(&status, "status", "", "Filter by status (completed, ongoing, maintenance)")
	listCmd.Flags().StringVar(&search, "search", "", "Search title, description and technologies")
	listCmd.Flags().StringVar(&ordering, "ordering", "", "Order by field, e.g. -project_date")
	listCmd.Flags().BoolVar(&featuredOnly, "featured", false, "Filter by featured flag")

	featuredCmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			items, err := a.client.FeaturedPortfolio(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}

	cmd.AddCommand(
		listCmd,
		get(a, "Show one project", func(a *app, cmd *cobra.Command, slug string) (*client.PortfolioProject, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.GetPortfolioProject(ctx, slug)
		}),
		featuredCmd,
	)
	return cmd
}

func (a *app) newTestimonialsCmd() *cobra.Command {
	var rating int
	var source string

	cmd := &cobra.Command{Use: "testimonials", Short: "Client testimonials"}
	listCmd := list(a, "List testimonials", func(a *app, cmd *cobra.Command) ([]client.Testimonial, error) {
		ctx, cancel := a.requestContext(cmd)
		defer cancel()
		return a.client.ListTestimonials(ctx, client.TestimonialFilter{Rating: rating, Source: source})
	})
	listCmd.Flags().IntVar(&rating, "rating", 0, "Filter by rating (1-5)")
	listCmd.Flags().StringVar(&source, "source", "", "Filter by source (fiverr, upwork, direct, other)")

	featuredCmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured testimonials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			items, err := a.client.FeaturedTestimonials(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}
	cmd.AddCommand(listCmd, featuredCmd)
	return cmd
}

func (a *app) newContactCmd() *cobra.Command {
	var req client.ContactSubmission

	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			ack, err := a.client.SubmitContact(ctx, req)
			if err != nil {
				for field, msgs := range client.FieldErrors(err) {
					for _, m := range msgs {
						log.Error().Str("field", field).Msg(m)
					}
				}
				return err
			}
			return printJSON(cmd, ack)
		},
	}
	f := submit.Flags()
	f.StringVar(&req.Name, "name", "", "Your name")
	f.StringVar(&req.Email, "email", "", "Reply address")
	f.StringVar(&req.Phone, "phone", "", "Phone number")
	f.StringVar(&req.Company, "company", "", "Company name")
	f.StringVar(&req.InquiryType, "inquiry-type", "", "consultation, quote, support or general")
	f.StringVar(&req.Subject, "subject", "", "Subject line")
	f.StringVar(&req.Service, "service", "", "Service slug of interest")
	f.StringVar(&req.Message, "message", "", "Message body")
	f.StringVar(&req.Budget, "budget", "", "Budget range")
	f.StringVar(&req.Timeline, "timeline", "", "Desired timeline")

	cmd := &cobra.Command{Use: "contact", Short: "Contact form"}
	cmd.AddCommand(submit)
	return cmd
}

func (a *app) newCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "company",
		Short: "Show company information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			info, err := a.client.GetCompanyInfo(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

func (a *app) newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			team, err := a.client.ListTeam(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, team)
		},
	}
}

func (a *app) newJobsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "jobs", Short: "Job openings"}
	cmd.AddCommand(
		list(a, "List job openings", func(a *app, cmd *cobra.Command) ([]client.JobOpening, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.ListJobs(ctx)
		}),
		get(a, "Show one job opening", func(a *app, cmd *cobra.Command, slug string) (*client.JobOpening, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.GetJob(ctx, slug)
		}),
	)
	return cmd
}

func (a *app) newPostsCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{Use: "posts", Short: "Blog posts"}
	listCmd := list(a, "List blog posts", func(a *app, cmd *cobra.Command) ([]client.BlogPost, error) {
		ctx, cancel := a.requestContext(cmd)
		defer cancel()
		return a.client.ListPosts(ctx, client.PostFilter{Category: category, Search: search})
	})
	listCmd.Flags().StringVar(&category, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&search, "search", "", "Search title, excerpt and content")

	cmd.AddCommand(
		listCmd,
		get(a, "Show one blog post", func(a *app, cmd *cobra.Command, slug string) (*client.BlogPost, error) {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			return a.client.GetPost(ctx, slug)
		}),
	)
	return cmd
}
