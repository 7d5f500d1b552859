package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/logging"
	"github.com/verte-zerg/bikeshare/internal/pager"
	"github.com/verte-zerg/bikeshare/internal/prompt"
	"github.com/verte-zerg/bikeshare/internal/stats"
)

const greeting = "Hello! Let's explore some US bikeshare data!"

// Options configures a Session.
type Options struct {
	Catalog  *config.Catalog
	Logger   *slog.Logger
	In       io.Reader
	Out      io.Writer
	PageSize int
}

// Session repeats filter selection, loading, reporting and paging until declined.
type Session struct {
	catalog  *config.Catalog
	logger   *slog.Logger
	prompter *prompt.Prompter
	out      io.Writer
	runner   *stats.Runner
	pageSize int
}

// New builds a Session from opts.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		catalog:  opts.Catalog,
		logger:   logger,
		prompter: prompt.New(opts.In, opts.Out),
		out:      opts.Out,
		runner:   stats.NewRunner(opts.Out),
		pageSize: opts.PageSize,
	}
}

// Run loops until the user declines to restart or input ends.
// Load failures end the loop with an error.
func (s *Session) Run(ctx context.Context) error {
	iteration := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		iteration++
		restart, err := s.iterate(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("input closed", "iteration", iteration)
				return nil
			}
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) iterate(ctx context.Context) (bool, error) {
	if _, err := fmt.Fprintln(s.out, greeting); err != nil {
		return false, err
	}
	filter, err := SelectFilters(s.prompter, s.catalog)
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintln(s.out, stats.Separator()); err != nil {
		return false, err
	}
	s.logger.Info("filters selected", "city", filter.City, "month", filter.Month, "day", filter.Day)

	ds, err := dataset.Load(ctx, s.logger, s.catalog, filter)
	if err != nil {
		return false, err
	}
	if err := s.runner.Run(ds, stats.Sections()...); err != nil {
		return false, err
	}
	if err := pager.New(ds, s.pageSize).Run(s.prompter, s.out); err != nil {
		return false, err
	}
	return s.prompter.Confirm("\nWould you like to restart? Enter yes or no.\n")
}
