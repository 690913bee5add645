package store

import (
	"context"
	"sync/atomic"
	"time"

	"gorm.io/gorm/clause"

	"xroad/internal/errors"
	"xroad/pkg/conn"
	"xroad/pkg/exception"
)

// recordRow is the xroad_records table.
type recordRow struct {
	Kind      string `gorm:"size:32;primaryKey"`
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Snapshot  uint64 `gorm:"not null"`
	Fields    []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (recordRow) TableName() string {
	return "xroad_records"
}

func toModel(row Row) (recordRow, error) {
	fields := row.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := encoder.Marshal(fields)
	if err != nil {
		return recordRow{}, errors.Wrapf(err, "marshal fields %s/%d", row.Kind, row.ID)
	}
	return recordRow{
		Kind:      row.Kind,
		ID:        row.ID,
		Snapshot:  row.Snapshot,
		Fields:    data,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func fromModel(m recordRow) (Row, error) {
	row := Row{Kind: m.Kind, ID: m.ID, Snapshot: m.Snapshot}
	if err := decoder.Unmarshal(m.Fields, &row.Fields); err != nil {
		return Row{}, errors.Wrapf(err, "decode fields %s/%d", m.Kind, m.ID)
	}
	return row, nil
}

// PostgresSink upserts snapshots into PostgreSQL.
type PostgresSink struct {
	pg     *conn.Postgres
	closed atomic.Bool
}

// OpenPostgres connects with opt and migrates the records table.
func OpenPostgres(ctx context.Context, opt conn.Option) (*PostgresSink, error) {
	pg, err := conn.Open(opt)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx, &recordRow{}); err != nil {
		_ = pg.Close()
		return nil, err
	}
	return &PostgresSink{pg: pg}, nil
}

func (s *PostgresSink) Put(ctx context.Context, row Row) error {
	if s.closed.Load() {
		return exception.ErrStoreClosed
	}
	m, err := toModel(row)
	if err != nil {
		return err
	}
	create := s.pg.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot", "fields", "updated_at"}),
	}).Create(&m)
	if create.Error != nil {
		return errors.Wrapf(create.Error, "upsert row %s/%d", row.Kind, row.ID)
	}
	return nil
}

func (s *PostgresSink) List(ctx context.Context, kind string) ([]Row, error) {
	if s.closed.Load() {
		return nil, exception.ErrStoreClosed
	}
	var models []recordRow
	if err := s.pg.DB(ctx).Where("kind = ?", kind).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "list rows %s", kind)
	}
	rows := make([]Row, 0, len(models))
	for _, m := range models {
		row, err := fromModel(m)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *PostgresSink) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.pg.Close()
}
