package dal

import (
	"bsky_bots/shared"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks bsky_bots/dal IRepo

// IRepo is the durable consent store. Every bot with a consent workflow owns
// one table, keyed by follower DID; all operations address one bot's table.
// A missing row reads as "no DM sent, no consent granted".
type IRepo interface {
	InitUpdateDb()
	ReconcileFollowers(bot string, dids []string) error
	MarkDmSent(bot, did string) error
	MarkConsentGranted(bot, did string) error
	HasDmSent(bot, did string) (bool, error)
	HasConsentGranted(bot, did string) (bool, error)
	GetConsentRecords(bot string) ([]*ConsentRecord, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		if _, err = repo.db.Exec(string(sqlBytes)); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
	}
	repo.mustEnsureBotTables()
}

// mustEnsureBotTables creates the per-bot consent tables for every configured
// bot that runs the consent workflow.
func (repo *Repo) mustEnsureBotTables() {
	for _, bot := range repo.cfg.Bots {
		if bot.ConsentDm == nil {
			continue
		}
		query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			did TEXT PRIMARY KEY,
			dm_sent DATE,
			consent_date DATE,
			UNIQUE(did)
		)`, tableName(bot.Username))
		if _, err := repo.db.Exec(query); err != nil {
			repo.logger.Errorf("Failed to create consent table for bot '%s': %v", bot.Username, err)
			panic(err)
		}
	}
}

// tableName is safe to splice into SQL: the handle is reduced to
// [0-9a-z_] first.
func tableName(bot string) string {
	return `"consent_` + shared.SanitizeTableName(bot) + `"`
}

// ReconcileFollowers brings a bot's table in line with the live follower set:
// rows for vanished followers are deleted (unfollowing forfeits all consent
// state), and a fresh zero-state row is inserted for every new follower.
// Existing rows are never touched.
func (repo *Repo) ReconcileFollowers(bot string, dids []string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var err error
	if len(dids) == 0 {
		_, err = repo.db.Exec(fmt.Sprintf(`DELETE FROM %s`, tableName(bot)))
		return err
	}

	args := make([]interface{}, len(dids))
	for i, did := range dids {
		args[i] = did
	}
	placeholders := strings.Repeat(", ?", len(dids))[2:]

	query := fmt.Sprintf(`DELETE FROM %s WHERE did NOT IN (%s)`, tableName(bot), placeholders)
	if _, err = repo.db.Exec(query, args...); err != nil {
		return err
	}

	values := strings.Repeat(", (?)", len(dids))[2:]
	query = fmt.Sprintf(`INSERT OR IGNORE INTO %s (did) VALUES %s`, tableName(bot), values)
	_, err = repo.db.Exec(query, args...)
	return err
}

func (repo *Repo) MarkDmSent(bot, did string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	query := fmt.Sprintf(`UPDATE %s SET dm_sent = CURRENT_TIMESTAMP WHERE did = ?`, tableName(bot))
	_, err := repo.db.Exec(query, did)
	return err
}

func (repo *Repo) MarkConsentGranted(bot, did string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	query := fmt.Sprintf(`UPDATE %s SET consent_date = CURRENT_TIMESTAMP WHERE did = ?`, tableName(bot))
	_, err := repo.db.Exec(query, did)
	return err
}

func (repo *Repo) HasDmSent(bot, did string) (bool, error) {
	return repo.hasTimestamp(bot, did, "dm_sent")
}

func (repo *Repo) HasConsentGranted(bot, did string) (bool, error) {
	return repo.hasTimestamp(bot, did, "consent_date")
}

func (repo *Repo) hasTimestamp(bot, did, column string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE did = ?`, column, tableName(bot))
	row := repo.db.QueryRow(query, did)
	var val sql.NullTime
	if err := row.Scan(&val); err != nil {
		if err == sql.ErrNoRows {
			// No row at all reads the same as an unset timestamp
			return false, nil
		}
		return false, err
	}
	return val.Valid, nil
}

func (repo *Repo) GetConsentRecords(bot string) ([]*ConsentRecord, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := fmt.Sprintf(`SELECT did, dm_sent, consent_date FROM %s`, tableName(bot))
	rows, err := repo.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*ConsentRecord
	for rows.Next() {
		rec := ConsentRecord{}
		if err = rows.Scan(&rec.Did, &rec.DmSent, &rec.ConsentDate); err != nil {
			return nil, err
		}
		res = append(res, &rec)
	}
	return res, rows.Err()
}
