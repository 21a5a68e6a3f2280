package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/strandedsim/stranded-tui/internal/engine"
	"github.com/strandedsim/stranded-tui/internal/knowledge"
	"github.com/strandedsim/stranded-tui/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to Postgres per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// LedgerRepo stores the per-player knowledge ledger as a single JSONB row,
// loaded and saved whole. It satisfies knowledge.Repository, so the tracker
// never knows whether it is talking to Postgres, a YAML file, or memory.
type LedgerRepo struct {
	db     *DB
	player string
}

func NewLedgerRepo(db *DB, player string) *LedgerRepo {
	return &LedgerRepo{db: db, player: player}
}

func (r *LedgerRepo) Load() (knowledge.State, error) {
	row := r.db.gorm.Raw(`SELECT state FROM ledgers WHERE player = ?`, r.player).Row()
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return knowledge.EmptyState(), nil
		}
		return knowledge.EmptyState(), errors.Wrap(err, "load ledger")
	}
	var st knowledge.State
	if err := json.Unmarshal(raw, &st); err != nil {
		// Corrupt ledger degrades to a fresh one rather than failing the run.
		return knowledge.EmptyState(), nil
	}
	return st, nil
}

func (r *LedgerRepo) Save(st knowledge.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return errors.Wrap(err, "encode ledger")
	}
	err = r.db.gorm.Exec(`
		INSERT INTO ledgers(player, state, updated_at) VALUES (?,?,now())
		ON CONFLICT (player) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		r.player, raw).Error
	return errors.Wrap(err, "save ledger")
}

// RunRecord is one completed or in-progress game.
type RunRecord struct {
	ID          uuid.UUID
	Player      string
	Seed        string
	Environment string
	Outcome     string
	TurnCount   int
	DeathCause  string
}

type RunRepo struct{ db *DB }

func NewRunRepo(db *DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Create(ctx context.Context, player, seed string, sc engine.Scenario) (RunRecord, error) {
	id := uuid.New()
	err := r.db.gorm.WithContext(ctx).Exec(`
		INSERT INTO runs(id, player, seed, environment, weather, outcome) VALUES (?,?,?,?,?,?)`,
		id, player, seed, string(sc.Environment), string(sc.Weather), string(engine.OutcomeUndefined)).Error
	if err != nil {
		return RunRecord{}, errors.Wrap(err, "create run")
	}
	return RunRecord{ID: id, Player: player, Seed: seed, Environment: string(sc.Environment)}, nil
}

func (r *RunRepo) Finish(ctx context.Context, id uuid.UUID, s engine.GameState) error {
	err := r.db.gorm.WithContext(ctx).Exec(`
		UPDATE runs SET outcome = ?, turn_count = ?, death_cause = ?, finished_at = now() WHERE id = ?`,
		string(s.Outcome), s.TurnNumber, s.DeathCause, id).Error
	return errors.Wrap(err, "finish run")
}

func (r *RunRepo) Get(ctx context.Context, id uuid.UUID) (RunRecord, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`
		SELECT id, player, seed, environment, outcome, coalesce(turn_count,0), coalesce(death_cause,'')
		FROM runs WHERE id = ?`, id).Row()
	var rec RunRecord
	if err := row.Scan(&rec.ID, &rec.Player, &rec.Seed, &rec.Environment, &rec.Outcome, &rec.TurnCount, &rec.DeathCause); err != nil {
		return RunRecord{}, errors.Wrap(err, "get run")
	}
	return rec, nil
}

// TurnRepo appends one row per resolved turn, the durable mirror of the
// in-memory history.
type TurnRepo struct{ db *DB }

func NewTurnRepo(db *DB) *TurnRepo { return &TurnRepo{db: db} }

func (t *TurnRepo) Insert(ctx context.Context, tx *gorm.DB, runID uuid.UUID, turn int, out engine.DecisionOutcome, m engine.PlayerMetrics) error {
	deltaB, _ := json.Marshal(out.MetricsChange)
	metricsB, _ := json.Marshal(m)
	err := tx.Exec(`
		INSERT INTO turns(id, run_id, turn_number, decision_id, quality, principle, effect, deltas, metrics)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		uuid.New(), runID, turn, string(out.Decision.ID), string(out.Quality),
		out.PrincipleAlignment, out.ImmediateEffect, deltaB, metricsB).Error
	return errors.Wrap(err, "insert turn")
}

func (t *TurnRepo) CountForRun(ctx context.Context, runID uuid.UUID) (int, error) {
	row := t.db.gorm.WithContext(ctx).Raw(`SELECT count(*) FROM turns WHERE run_id = ?`, runID).Row()
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count turns")
	}
	return n, nil
}

// Archive mirrors one run into the runs/turns tables as it plays out. The
// host treats archive errors as status noise; gameplay never waits on it.
type Archive struct {
	db     *DB
	runs   *RunRepo
	turns  *TurnRepo
	player string
	runID  uuid.UUID
	open   bool
}

func NewArchive(db *DB, player string) *Archive {
	return &Archive{db: db, runs: NewRunRepo(db), turns: NewTurnRepo(db), player: player}
}

func (a *Archive) StartRun(ctx context.Context, seed string, sc engine.Scenario) error {
	rec, err := a.runs.Create(ctx, a.player, seed, sc)
	if err != nil {
		return err
	}
	a.runID = rec.ID
	a.open = true
	return nil
}

func (a *Archive) RecordTurn(ctx context.Context, turn int, out engine.DecisionOutcome, m engine.PlayerMetrics) error {
	if !a.open {
		return nil
	}
	return a.db.WithTx(ctx, func(tx *gorm.DB) error {
		return a.turns.Insert(ctx, tx, a.runID, turn, out, m)
	})
}

func (a *Archive) FinishRun(ctx context.Context, s engine.GameState) error {
	if !a.open {
		return nil
	}
	a.open = false
	return a.runs.Finish(ctx, a.runID, s)
}
