package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"frontdesk/config"
	"frontdesk/services"
	"frontdesk/services/logger"
)

const sessionTTL = 12 * time.Hour

// app holds the dependencies shared by the commands.
type app struct {
	settings  config.Settings
	log       logger.Logger
	directory services.Directory
	holidays  services.HolidaySource
	refresher services.TokenRefresher
	scope     services.ScopeChecker
	rdb       *redis.Client
	db        *gorm.DB
}

func loadSettings() (config.Settings, logger.Logger, error) {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return settings, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, logger.NewDefaultLogger(logger.ParseLevel(settings.LogLevel)), nil
}

// newApp connects the directory selected by DIRECTORY_SOURCE and, when
// configured, redis. A redis failure only disables caching.
func newApp(ctx context.Context) (*app, error) {
	settings, log, err := loadSettings()
	if err != nil {
		return nil, err
	}
	a := &app{settings: settings, log: log}

	if settings.RedisAddr != "" {
		rdb, err := config.ConnectRedis(ctx, settings)
		if err != nil {
			log.Warn("Không kết nối được Redis, chạy không cache: %v", err)
		} else {
			a.rdb = rdb
		}
	}

	switch settings.DirectorySource {
	case config.SourceLocal:
		db, err := config.ConnectDB(settings)
		if err != nil {
			a.close()
			return nil, err
		}
		if err := config.Migrate(db); err != nil {
			a.close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		repo := services.NewInventoryRepository(db)
		a.db = db
		a.directory = repo
		a.holidays = repo
		a.scope = repo
	default:
		if settings.DirectoryBaseURL == "" {
			a.close()
			return nil, fmt.Errorf("DIRECTORY_BASE_URL is required when DIRECTORY_SOURCE=%s", config.SourceRemote)
		}
		client := services.NewDirectoryClient(settings.DirectoryBaseURL, settings.DirectoryTimeout)
		a.directory = client
		a.refresher = client
	}
	return a, nil
}

func (a *app) close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// sessionStore picks the redis store when redis is up.
func (a *app) sessionStore(key string) services.SessionStore {
	if a.rdb != nil {
		return services.NewRedisSessionStore(a.rdb, key, sessionTTL, a.refresher)
	}
	return services.NewMemorySessionStore("", a.refresher)
}

// printResult writes v as JSON when --json is set, otherwise calls text.
func printResult(w io.Writer, v interface{}, text func(io.Writer)) error {
	if !jsonOutput {
		text(w)
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
