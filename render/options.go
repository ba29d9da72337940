package render

// Defaults for page layout.
const (
	DefaultMarkerSize = 50
	DefaultRows       = 15
	DefaultCols       = 8
	DefaultBegin      = 0

	// PageGap is the gutter between marker canvases and around the page.
	PageGap = 5
	// CellGap separates adjacent cells inside one marker.
	CellGap = 1
)

// Option mutates a Layout.
type Option func(*Layout)

// Layout describes a page of markers.
type Layout struct {
	MarkerSize int // canvas side per marker, pixels
	Rows, Cols int // slots per page
	Begin      int // index of the first grid drawn
}

// WithMarkerSize sets the per-marker canvas side in pixels.
func WithMarkerSize(px int) Option { return func(l *Layout) { l.MarkerSize = px } }

// WithGrid sets the number of slot rows and columns.
func WithGrid(rows, cols int) Option {
	return func(l *Layout) { l.Rows, l.Cols = rows, cols }
}

// WithBegin sets the index of the first grid placed on the page.
func WithBegin(i int) Option { return func(l *Layout) { l.Begin = i } }

// NewLayout applies opts over the defaults. Validation happens in Page.
func NewLayout(opts ...Option) Layout {
	l := Layout{
		MarkerSize: DefaultMarkerSize,
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Begin:      DefaultBegin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}

	return l
}

// PerPage returns the number of slots on one page.
func (l Layout) PerPage() int {
	return l.Rows * l.Cols
}

func (l Layout) validate() error {
	if l.MarkerSize <= 0 || l.Rows <= 0 || l.Cols <= 0 || l.Begin < 0 {
		return ErrInvalidLayout
	}

	return nil
}
