package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	tutorrepo "github.com/kailas-cloud/tutordex/internal/repository/tutor"
)

func newSeedCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load user records from a JSON file into the store",
		Long: `seed reads a JSON array of user records and writes each one under <key_prefix>users:<id>.
Records look like {"id":"ann","firstname":"Ann","lastname":"Smith","email":"ann@example.com",
"subjects":[{"name":"Mathematics"}],"rating":4.5,"tutorVerified":true}.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			tutors, err := tutorrepo.DecodeSeed(data)
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

			replace, err := cmd.Flags().GetBool("replace")
			if err != nil {
				return err
			}
			if replace {
				n, err := repo.DeleteAll(ctx)
				if err != nil {
					return fmt.Errorf("clear users: %w", err)
				}
				rt.logger.Info("Removed existing users", zap.Int("count", n))
			}

			if len(tutors) > 0 {
				if err := repo.UpsertMany(ctx, tutors); err != nil {
					return fmt.Errorf("seed users: %w", err)
				}
			}
			rt.logger.Info("Seeded users", zap.String("file", file), zap.Int("count", len(tutors)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d user records\n", len(tutors))
			return err
		},
	}
	cmd.Flags().String("file", "", "Path to a JSON array of user records")
	cmd.Flags().Bool("replace", false, "Delete every stored user record before seeding")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
