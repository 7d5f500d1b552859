// Package pager prints a table in fixed-size row windows on request.
package pager

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/bikeshare/internal/prompt"
	"github.com/verte-zerg/bikeshare/internal/stats"
)

// DefaultPageSize is the number of rows shown per request.
const DefaultPageSize = 5

const exhaustedNotice = "No more data to display."

// Source is a table that can be read in row windows.
type Source interface {
	Rows() int
	Names() []string
	Window(start, n int) [][]string
}

// Pager walks a Source from the first row.
type Pager struct {
	src    Source
	size   int
	cursor int
}

// New returns a Pager over src; size <= 0 falls back to DefaultPageSize.
func New(src Source, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{src: src, size: size}
}

// Cursor returns the index of the next row to show.
func (p *Pager) Cursor() int {
	return p.cursor
}

// Next returns the next window of rows, or false once the cursor passed the end.
func (p *Pager) Next() ([][]string, bool) {
	if p.cursor >= p.src.Rows() {
		return nil, false
	}
	rows := p.src.Window(p.cursor, p.size)
	p.cursor += p.size
	return rows, true
}

// Run offers windows until the answer is not "yes" or the rows run out.
func (p *Pager) Run(pr *prompt.Prompter, w io.Writer) error {
	question := fmt.Sprintf("\nWould you like to see %d lines of raw data? Enter yes or no.\n", p.size)
	for {
		ok, err := pr.Confirm(question)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		start := p.cursor
		rows, more := p.Next()
		if !more {
			_, err := fmt.Fprintln(w, exhaustedNotice)
			return err
		}
		if err := p.render(w, start, rows); err != nil {
			return err
		}
	}
}

func (p *Pager) render(w io.Writer, start int, rows [][]string) error {
	headers := append([]string{""}, p.src.Names()...)
	table := make([][]string, 0, len(rows))
	for i, row := range rows {
		table = append(table, append([]string{strconv.Itoa(start + i)}, row...))
	}
	for _, line := range stats.FormatTable(headers, table, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
