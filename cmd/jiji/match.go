package main

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ICHI0608/jiji-matching/internal/config"
	"github.com/ICHI0608/jiji-matching/internal/domain"
	"github.com/ICHI0608/jiji-matching/internal/logging"
	"github.com/ICHI0608/jiji-matching/internal/matching"
)

// matchCmd runs one matching request from the command line, mainly for
// trying out catalog data and scoring changes without the HTTP server.
func matchCmd() *cobra.Command {
	var (
		name       string
		experience string
		license    string
		style      string
		area       string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "match [concern text]...",
		Short: "Run a one-shot matching request against the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Logging, os.Stderr)

			catalog, _, cleanup, err := openCatalog(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			profile := domain.UserProfile{
				Name:               name,
				DivingExperience:   domain.DivingExperience(experience),
				LicenseType:        domain.LicenseType(license),
				ParticipationStyle: domain.ParticipationStyle(style),
			}

			engine := matching.NewEngine(catalog, logger)
			result := engine.FindOptimalShops(cmd.Context(), profile, args, matching.Options{
				PreferredArea: area,
				MaxResults:    maxResults,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&experience, "experience", "none", "diving experience: none, beginner, advanced")
	cmd.Flags().StringVar(&license, "license", "none", "license type: none, OWD, AOW")
	cmd.Flags().StringVar(&style, "style", "solo", "participation style: solo, couple, group")
	cmd.Flags().StringVar(&area, "area", "", "restrict matching to one area")
	cmd.Flags().IntVar(&maxResults, "max", 0, "maximum recommendations (0 uses the configured default)")

	return cmd
}
