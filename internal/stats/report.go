package stats

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/bikeshare/internal/dataset"
)

const separatorWidth = 40

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

// Section is one titled report over a dataset.
type Section struct {
	Title  string
	Render func(w io.Writer, ds *dataset.Dataset) error
}

// Sections returns the four reports in display order.
func Sections() []Section {
	return []Section{
		{
			Title: "Calculating The Most Frequent Times of Travel...",
			Render: func(w io.Writer, ds *dataset.Dataset) error {
				return ComputeTime(ds).Render(w)
			},
		},
		{
			Title: "Calculating The Most Popular Stations and Trip...",
			Render: func(w io.Writer, ds *dataset.Dataset) error {
				return ComputeStations(ds).Render(w)
			},
		},
		{
			Title: "Calculating Trip Duration...",
			Render: func(w io.Writer, ds *dataset.Dataset) error {
				return ComputeDurations(ds).Render(w)
			},
		},
		{
			Title: "Calculating User Stats...",
			Render: func(w io.Writer, ds *dataset.Dataset) error {
				return ComputeUsers(ds).Render(w)
			},
		},
	}
}

// Runner prints sections with a heading, elapsed time and separator.
type Runner struct {
	out   io.Writer
	color bool
	now   func() time.Time
}

// NewRunner returns a Runner writing to w. Color is used only on terminals.
func NewRunner(w io.Writer) *Runner {
	return &Runner{out: w, color: shouldUseColor(w), now: time.Now}
}

// Run renders every section in order, stopping at the first write error.
func (r *Runner) Run(ds *dataset.Dataset, sections ...Section) error {
	for _, section := range sections {
		if err := r.runSection(ds, section); err != nil {
			return fmt.Errorf("failed to render %q: %w", section.Title, err)
		}
	}
	return nil
}

func (r *Runner) runSection(ds *dataset.Dataset, section Section) error {
	title := section.Title
	if r.color {
		title = headingStyle.Render(title)
	}
	if _, err := fmt.Fprintf(r.out, "\n%s\n\n", title); err != nil {
		return err
	}
	started := r.now()
	if err := section.Render(r.out, ds); err != nil {
		return err
	}
	elapsed := r.now().Sub(started)
	if _, err := fmt.Fprintf(r.out, "\nThis took %.4f seconds.\n", elapsed.Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, Separator()); err != nil {
		return err
	}
	return nil
}

// Separator is the rule printed between report blocks.
func Separator() string {
	return strings.Repeat("-", separatorWidth)
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
