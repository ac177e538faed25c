package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
)

func newTutorsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutors",
		Short: "Search the tutor directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			rt, err := loadDeps(v)
			if err != nil {
				return err
			}
			ctx := rt.withLogger(cmd.Context())
			repo, closeStore, err := rt.openRepo(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			svc := directoryuc.New(repo).WithSubjectOptions(rt.cfg.Directory.SubjectOptions)
			tutors, err := svc.Search(ctx, c)
			if err != nil {
				return err
			}
			return renderTutors(cmd.OutOrStdout(), tutors)
		},
	}
	cmd.Flags().String("q", "", "Free-text search over names and subjects (substring)")
	cmd.Flags().StringSlice("subject", nil, "Required subject; repeat to require several")
	cmd.Flags().Float64("min-rating", 0, "Minimum rating (0-5); unset means no threshold")
	return cmd
}

// criteriaFromFlags builds criteria from --q, --subject and --min-rating.
// --min-rating only applies when given explicitly, so 0 and unset stay distinct.
func criteriaFromFlags(cmd *cobra.Command) (criteria.Criteria, error) {
	q, err := cmd.Flags().GetString("q")
	if err != nil {
		return criteria.Criteria{}, err
	}
	subjects, err := cmd.Flags().GetStringSlice("subject")
	if err != nil {
		return criteria.Criteria{}, err
	}
	var minRating *float64
	if cmd.Flags().Changed("min-rating") {
		r, err := cmd.Flags().GetFloat64("min-rating")
		if err != nil {
			return criteria.Criteria{}, err
		}
		minRating = &r
	}
	c, err := criteria.New(q, subjects, minRating)
	if err != nil {
		return criteria.Criteria{}, fmt.Errorf("criteria: %w", err)
	}
	return c, nil
}
