package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// PredictionWriteRepository appends prediction records
type PredictionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPredictionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PredictionWriteRepository {
	return &PredictionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a record and fills in its insertion sequence.
// The request transaction is used when one is present in ctx.
func (r *PredictionWriteRepository) Save(ctx context.Context, p *models.PredictionDB) error {
	const query = `
		INSERT INTO predictions (
			prediction_id, username, created_at,
			ph, hardness, solids, chloramines, sulfate,
			conductivity, organic_carbon, trihalomethanes, turbidity,
			score, potable, recommendation
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING seq
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{
		p.PredictionID, p.Username, p.CreatedAt,
		p.PH, p.Hardness, p.Solids, p.Chloramines, p.Sulfate,
		p.Conductivity, p.OrganicCarbon, p.Trihalomethanes, p.Turbidity,
		p.Score, p.Potable, p.Recommendation,
	}

	var seq int64
	err := sqlx.GetContext(ctx, executor, &seq, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", seq,
		"error", err,
	)

	if err != nil {
		return err
	}
	p.Seq = seq
	return nil
}

// PredictionReadRepository queries prediction history
type PredictionReadRepository struct {
	db *sqlx.DB
}

func NewPredictionReadRepository(db *sqlx.DB) *PredictionReadRepository {
	return &PredictionReadRepository{db: db}
}

// ListByOwner returns all records of a user, oldest first.
func (r *PredictionReadRepository) ListByOwner(ctx context.Context, username string) ([]models.PredictionDB, error) {
	const query = `
		SELECT seq, prediction_id, username, created_at,
			ph, hardness, solids, chloramines, sulfate,
			conductivity, organic_carbon, trihalomethanes, turbidity,
			score, potable, recommendation
		FROM predictions
		WHERE username = $1
		ORDER BY seq ASC
	`

	records := []models.PredictionDB{}
	err := r.db.SelectContext(ctx, &records, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}
