package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/termdock/internal/domain"
	"github.com/renato0307/termdock/internal/logging"
	"github.com/renato0307/termdock/internal/ports"
)

// SQLiteRepository implements ports.SessionRepository and
// ports.ManualOrderStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.SessionRepository = (*SQLiteRepository)(nil)
	_ ports.ManualOrderStore  = (*SQLiteRepository)(nil)
)

// gormLogger wraps the termdock logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TERMDOCK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := "file:" + dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&SessionModel{}, &ManualOrderModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Mark tables cascade with their session
	migrator := db.Migrator()
	if !migrator.HasTable(&SessionPinModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS session_pins (
				session_id TEXT PRIMARY KEY,
				created_at DATETIME,
				FOREIGN KEY (session_id) REFERENCES sessions(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create session_pins table: %w", err)
		}
	}
	if !migrator.HasTable(&SessionStickyModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS session_sticky (
				session_id TEXT PRIMARY KEY,
				created_at DATETIME,
				FOREIGN KEY (session_id) REFERENCES sessions(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create session_sticky table: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific TERMDOCK_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var session SessionModel
	var activeChildren int64

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&session).Error; err != nil {
				return err
			}
			return tx.Model(&SessionModel{}).
				Where("parent_id = ? AND is_active = ?", id, true).
				Count(&activeChildren).Error
		})
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil, err
	}

	result := sessionModelToDomain(session, activeChildren > 0)
	return &result, nil
}

// List implements SessionReader.List. Child sessions are included.
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Session, error) {
	collection, err := r.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	return collection.Slice(), nil
}

// Add implements SessionWriter.Add. New sessions are placed at the top.
func (r *SQLiteRepository) Add(ctx context.Context, session domain.Session) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing int64
			if err := tx.Model(&SessionModel{}).Where("id = ?", session.ID).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return fmt.Errorf("session %s: %w", session.ID, domain.ErrSessionExists)
			}

			var minPosition int
			tx.Model(&SessionModel{}).Select("COALESCE(MIN(position), 0)").Scan(&minPosition)

			model := domainToSessionModel(session)
			model.Position = minPosition - 1

			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
			return nil
		})
	}, 3)
}

// Delete implements SessionWriter.Delete. Child sessions are deleted with their parent.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ? OR parent_id = ?", id, id).Delete(&SessionModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}
			if err := tx.Where("session_id = ?", id).Delete(&SessionPinModel{}).Error; err != nil {
				return err
			}
			return tx.Where("session_id = ?", id).Delete(&SessionStickyModel{}).Error
		})
	}, 3)
}

// SetActive implements SessionStateUpdater.SetActive
func (r *SQLiteRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.updateSession(ctx, id, map[string]any{"is_active": active})
}

// UpdateWorkspace implements SessionStateUpdater.UpdateWorkspace
func (r *SQLiteRepository) UpdateWorkspace(ctx context.Context, id, workspace string) error {
	return r.updateSession(ctx, id, map[string]any{"workspace": workspace})
}

func (r *SQLiteRepository) updateSession(ctx context.Context, id string, updates map[string]any) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil
	}, 3)
}

// SetPinned implements SessionMarkWriter.SetPinned
func (r *SQLiteRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	return r.setMark(ctx, id, pinned, &SessionPinModel{SessionID: id})
}

// SetSticky implements SessionMarkWriter.SetSticky
func (r *SQLiteRepository) SetSticky(ctx context.Context, id string, sticky bool) error {
	return r.setMark(ctx, id, sticky, &SessionStickyModel{SessionID: id})
}

func (r *SQLiteRepository) setMark(ctx context.Context, id string, on bool, mark any) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing int64
			if err := tx.Model(&SessionModel{}).Where("id = ?", id).Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}

			if !on {
				return tx.Where("session_id = ?", id).Delete(mark).Error
			}
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(mark).Error
		})
	}, 3)
}

// ListPinned implements SessionMarkReader.ListPinned
func (r *SQLiteRepository) ListPinned(ctx context.Context) (domain.IDSet, error) {
	var marks []SessionPinModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Find(&marks).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list pinned sessions: %w", err)
	}

	set := domain.NewIDSet()
	for _, m := range marks {
		set.Add(m.SessionID)
	}
	return set, nil
}

// ListSticky implements SessionMarkReader.ListSticky
func (r *SQLiteRepository) ListSticky(ctx context.Context) (domain.IDSet, error) {
	var marks []SessionStickyModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Find(&marks).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list sticky sessions: %w", err)
	}

	set := domain.NewIDSet()
	for _, m := range marks {
		set.Add(m.SessionID)
	}
	return set, nil
}

// LoadState implements SessionStateLoader.LoadState. Sessions come back in
// stored position order; positions are renumbered when they drift.
func (r *SQLiteRepository) LoadState(ctx context.Context) (*domain.SessionCollection, error) {
	var sessions []SessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("position ASC, id ASC").Find(&sessions).Error; err != nil {
				return fmt.Errorf("failed to load sessions: %w", err)
			}

			needsNormalization := false
			for i, sess := range sessions {
				if sess.Position != i {
					needsNormalization = true
					break
				}
			}

			if needsNormalization {
				for i, sess := range sessions {
					if sess.Position != i {
						if err := tx.Model(&SessionModel{}).Where("id = ?", sess.ID).Update("position", i).Error; err != nil {
							return fmt.Errorf("failed to normalize positions: %w", err)
						}
						sessions[i].Position = i
					}
				}
			}

			return nil
		})
	}, 3)

	if err != nil {
		return nil, err
	}

	parents := activeParents(sessions)
	result := make([]domain.Session, len(sessions))
	for i, sess := range sessions {
		result[i] = sessionModelToDomain(sess, parents[sess.ID])
	}
	return domain.NewSessionCollection(result), nil
}

// Load implements ManualOrderStore.Load
func (r *SQLiteRepository) Load(ctx context.Context) (map[domain.WorkspaceKey][]string, error) {
	var rows []ManualOrderModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("workspace_key ASC, position ASC").Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load manual orders: %w", err)
	}

	orders := make(map[domain.WorkspaceKey][]string)
	for _, row := range rows {
		key := domain.ParseWorkspaceKey(row.WorkspaceKey)
		orders[key] = append(orders[key], row.SessionID)
	}
	return orders, nil
}

// Save implements ManualOrderStore.Save. Stored orders are replaced wholesale.
func (r *SQLiteRepository) Save(ctx context.Context, orders map[domain.WorkspaceKey][]string) error {
	var rows []ManualOrderModel
	for key, ids := range orders {
		for i, id := range ids {
			rows = append(rows, ManualOrderModel{
				Position:     i,
				SessionID:    id,
				WorkspaceKey: key.String(),
			})
		}
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&ManualOrderModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear manual orders: %w", err)
			}
			if len(rows) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return fmt.Errorf("failed to save manual orders: %w", err)
			}
			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
