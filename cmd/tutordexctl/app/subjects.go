package app

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	exploreuc "github.com/kailas-cloud/tutordex/internal/usecase/explore"
)

func newSubjectsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Search the explore catalog",
		Long: `subjects matches catalog titles and description words by prefix.
With --watch it reads one search term per line from stdin and prints results once typing settles.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadDeps(v)
			if err != nil {
				return err
			}
			svc := exploreuc.New(rt.cfg.Explore.Catalog())

			watch, err := cmd.Flags().GetBool("watch")
			if err != nil {
				return err
			}
			if watch {
				return watchSubjects(cmd.InOrStdin(), cmd.OutOrStdout(), svc, rt.cfg.Explore.DebounceDelay())
			}

			q, err := cmd.Flags().GetString("q")
			if err != nil {
				return err
			}
			return renderSubjects(cmd.OutOrStdout(), svc.Search(q))
		},
	}
	cmd.Flags().String("q", "", "Search term (prefix of a title or description word)")
	cmd.Flags().Bool("watch", false, "Read terms from stdin and search as they settle")
	return cmd
}

// watchSubjects feeds each input line to an explore session and prints settled results.
// The last term is flushed at end of input.
func watchSubjects(in io.Reader, out io.Writer, svc *exploreuc.Service, delay time.Duration) error {
	var (
		mu       sync.Mutex
		writeErr error
	)
	session := svc.NewSession(delay, func(term string, results []subject.Subject) {
		mu.Lock()
		defer mu.Unlock()
		if writeErr != nil {
			return
		}
		if _, err := fmt.Fprintf(out, "results for %q (%d):\n", term, len(results)); err != nil {
			writeErr = err
			return
		}
		writeErr = renderSubjects(out, results)
	})
	defer session.Close()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		session.SetTerm(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read terms: %w", err)
	}
	session.Flush()

	mu.Lock()
	defer mu.Unlock()
	return writeErr
}
