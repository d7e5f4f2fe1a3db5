package sheets

import (
	"strings"

	"go.uber.org/zap"
)

// ColNotFound is the sentinel returned when a header label is absent.
// Optional columns are common; callers substitute an empty value and carry on.
const ColNotFound = -1

// Columns maps normalized header labels to 0-based column positions for one
// snapshot of one sheet.
type Columns struct {
	sheet  string
	byName map[string]int
	logger *zap.Logger
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Resolve reads the header row at the table's declared index. A snapshot
// shorter than the header index yields an empty mapping; every lookup then
// resolves to ColNotFound.
func Resolve(snapshot Snapshot, table Table, logger ...*zap.Logger) Columns {
	l := zap.L().Named("sheets.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheets.resolver")
	}

	byName := make(map[string]int)
	if table.HeaderRow < len(snapshot.Data) {
		for i, label := range snapshot.Data[table.HeaderRow] {
			key := normalizeLabel(label)
			if key == "" {
				continue
			}
			if _, dup := byName[key]; !dup {
				byName[key] = i
			}
		}
	} else {
		l.Warn("header row beyond snapshot",
			zap.String("sheet", snapshot.Sheet),
			zap.Int("header_row", table.HeaderRow),
			zap.Int("rows", len(snapshot.Data)),
		)
	}

	return Columns{sheet: snapshot.Sheet, byName: byName, logger: l}
}

// Lookup never fails: an absent label logs a warning and returns ColNotFound.
func (c Columns) Lookup(label string) int {
	idx, ok := c.byName[normalizeLabel(label)]
	if !ok {
		c.logger.Warn("column label not found",
			zap.String("sheet", c.sheet),
			zap.String("label", label),
		)
		return ColNotFound
	}
	return idx
}

// Require escalates a missing label to a hard abort. Reserved for the small
// set of columns nothing can proceed without (identifiers, Employee ID).
func (c Columns) Require(label string) (int, error) {
	idx, ok := c.byName[normalizeLabel(label)]
	if !ok {
		return ColNotFound, RequiredColumnError(c.sheet, label)
	}
	return idx, nil
}

// LegacyHeaderStrategy is the compatibility shim used only by sequence
// allocation: instead of trusting the declared header index, it scans from
// the top for the first row that is not entirely blank and treats that as the
// header. Isolated here so it can be swapped without touching Resolve.
type LegacyHeaderStrategy struct {
	// FallbackColumn is the hard-coded 0-based position used when Label is
	// absent from the discovered header.
	FallbackColumn int
	Label          string
}

// HeaderRow returns the discovered 0-based header index, or -1 when the
// snapshot is entirely blank.
func (s LegacyHeaderStrategy) HeaderRow(snapshot Snapshot) int {
	for i, row := range snapshot.Data {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return i
			}
		}
	}
	return -1
}

// Column locates the identifier column under the discovered header, falling
// back to the hard-coded position with a warning.
func (s LegacyHeaderStrategy) Column(snapshot Snapshot, logger *zap.Logger) (headerRow, col int) {
	if logger == nil {
		logger = zap.L().Named("sheets.resolver")
	}

	headerRow = s.HeaderRow(snapshot)
	if headerRow < 0 {
		return -1, s.FallbackColumn
	}

	want := normalizeLabel(s.Label)
	for i, label := range snapshot.Data[headerRow] {
		if normalizeLabel(label) == want {
			return headerRow, i
		}
	}

	logger.Warn("legacy header discovery fell back to fixed column",
		zap.String("sheet", snapshot.Sheet),
		zap.String("label", s.Label),
		zap.Int("fallback_column", s.FallbackColumn),
	)
	return headerRow, s.FallbackColumn
}
