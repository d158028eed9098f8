package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dbsmedya/partlist/internal/body"
	"github.com/dbsmedya/partlist/internal/logger"
	"github.com/dbsmedya/partlist/internal/sqlutil"
)

// MySQLSource reads bodies from an inventory table filled by a CAD export:
//
//	design, seq, component_name, body_name,
//	min_x, min_y, min_z, max_x, max_y, max_z, visible
//
// Coordinates are in centimetres. Rows are read in seq order.
type MySQLSource struct {
	db     *sql.DB
	table  string // quoted
	design string
	logger *logger.Logger
}

// NewMySQLSource validates the table name and returns a source reading from db.
// An empty design reads every row of the table.
func NewMySQLSource(db *sql.DB, table, design string, log *logger.Logger) (*MySQLSource, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	quoted, err := sqlutil.QuoteTableName(table)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &MySQLSource{
		db:     db,
		table:  quoted,
		design: design,
		logger: log.WithSource("mysql", table),
	}, nil
}

// Query returns the SELECT statement and its arguments.
func (s *MySQLSource) Query() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT component_name, body_name, min_x, min_y, min_z, max_x, max_y, max_z, visible FROM ")
	sb.WriteString(s.table)

	var args []interface{}
	if s.design != "" {
		sb.WriteString(" WHERE design = ?")
		args = append(args, s.design)
	}
	sb.WriteString(" ORDER BY seq")
	return sb.String(), args
}

// Enumerate reads all rows. NULL coordinates leave the record without a
// bounding box, which the aggregation rejects for visible bodies.
func (s *MySQLSource) Enumerate(ctx context.Context) (*body.Design, error) {
	query, args := s.Query()
	s.logger.Debugw("Querying bodies", "query", query)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bodies: %w", err)
	}
	defer rows.Close()

	design := &body.Design{Name: s.design}
	for rows.Next() {
		var (
			component, name string
			coords          [6]sql.NullFloat64
			visible         bool
		)
		if err := rows.Scan(&component, &name,
			&coords[0], &coords[1], &coords[2],
			&coords[3], &coords[4], &coords[5],
			&visible); err != nil {
			return nil, fmt.Errorf("failed to scan body row: %w", err)
		}

		rec := body.Record{ComponentName: component, BodyName: name, Visible: visible}
		if allValid(coords) {
			rec.Box = &body.BoundingBox{
				Min: body.Point{X: coords[0].Float64, Y: coords[1].Float64, Z: coords[2].Float64},
				Max: body.Point{X: coords[3].Float64, Y: coords[4].Float64, Z: coords[5].Float64},
			}
		}
		design.Records = append(design.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read body rows: %w", err)
	}

	visible, hidden := body.CountVisible(design.Records)
	s.logger.Debugw("Bodies enumerated", "visible_bodies", visible, "hidden_bodies", hidden)
	return design, nil
}

func allValid(coords [6]sql.NullFloat64) bool {
	for _, c := range coords {
		if !c.Valid {
			return false
		}
	}
	return true
}
