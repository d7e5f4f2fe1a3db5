package indent

import (
	"context"
	"strconv"
	"strings"

	"go-hrfms/internal/sheets"
)

const (
	colIndentNo        = "Indent No"
	colPost            = "Post"
	colGender          = "Gender"
	colNoOfPost        = "No Of Post"
	colArrangementDate = "Candidate Arrangement Date"
	colCompletedDate   = "Completed Date"
	colSocialSite      = "Social Site"
	colStatus          = "Status"
)

//go:generate mockgen -source=indent_repo.go -destination=mock/indent_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Indent, error)
	// Identifiers re-fetches the authoritative identifier list; callers use
	// it immediately before allocating the next number.
	Identifiers(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, ind Indent) error
	UpdateStatus(ctx context.Context, indentNo, status string) error
}

type repository struct {
	client sheets.Client
}

func NewRepository(client sheets.Client) Repository {
	return &repository{client: client}
}

func (r *repository) FindAll(ctx context.Context) ([]Indent, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableIndent.Name)
	if err != nil {
		return nil, err
	}

	var out []Indent
	for _, row := range sheets.DataRows(snap, sheets.TableIndent) {
		if row.Get(colIndentNo) == "" {
			continue
		}
		count, _ := strconv.Atoi(row.Get(colNoOfPost))
		out = append(out, Indent{
			IndentNo:        row.Get(colIndentNo),
			Post:            row.Get(colPost),
			Gender:          row.Get(colGender),
			NoOfPost:        count,
			ArrangementDate: row.Get(colArrangementDate),
			CompletedDate:   row.Get(colCompletedDate),
			SocialSite:      strings.EqualFold(row.Get(colSocialSite), "Yes"),
			Status:          row.Get(colStatus),
		})
	}
	return out, nil
}

// Identifiers goes through the legacy header strategy rather than the
// declared header index; identifier allocation is the one path that has to
// survive sheets whose headers drifted.
func (r *repository) Identifiers(ctx context.Context) ([]string, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableIndent.Name)
	if err != nil {
		return nil, err
	}

	strat := sheets.LegacyHeaderStrategy{Label: colIndentNo, FallbackColumn: 0}
	headerRow, col := strat.Column(snap, nil)
	if headerRow < 0 {
		return nil, nil
	}

	var ids []string
	for i := headerRow + 1; i < len(snap.Data); i++ {
		row := snap.Data[i]
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			ids = append(ids, strings.TrimSpace(row[col]))
		}
	}
	return ids, nil
}

func (r *repository) Insert(ctx context.Context, ind Indent) error {
	social := "No"
	if ind.SocialSite {
		social = "Yes"
	}
	row := []string{
		ind.IndentNo,
		ind.Post,
		ind.Gender,
		strconv.Itoa(ind.NoOfPost),
		ind.ArrangementDate,
		ind.CompletedDate,
		social,
		ind.Status,
	}
	return r.client.Insert(ctx, sheets.TableIndent.Name, row)
}

// UpdateStatus re-derives the row index from a fresh snapshot; row position
// is never cached across calls.
func (r *repository) UpdateStatus(ctx context.Context, indentNo, status string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableIndent.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableIndent, colIndentNo, indentNo)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableIndent)
	statusCol, err := cols.Require(colStatus)
	if err != nil {
		return err
	}
	return r.client.UpdateCell(ctx, sheets.TableIndent.Name, rowIdx, statusCol+1, status)
}
