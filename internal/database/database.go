// Package database
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/flightlog-collective/skylog/internal/interfaces/config"
	"github.com/flightlog-collective/skylog/internal/interfaces/log"
	. "github.com/flightlog-collective/skylog/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseShutdownCallback struct {
	db *gorm.DB
}

func (dc *DatabaseShutdownCallback) Invoke(_ context.Context) error {
	dbPool, err := dc.db.DB()
	if err != nil {
		return err
	}
	return dbPool.Close()
}

func ConnectDatabase(log log.LoggerInterface, appConfig *config.Config, debug bool) (*DatabaseShutdownCallback, *DatabaseOperations, error) {
	databaseConfig := appConfig.Database

	dialector := databaseConfig.GetConnection(log)
	if dialector == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", databaseConfig.Type)
	}

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true
	connectionConfig.TranslateError = true
	if debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %w", err)
	}

	err = db.Migrator().AutoMigrate(&User{}, &Aircraft{}, &Flight{}, &Preferences{}, &AuditLog{}, &Feedback{})
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %w", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %w", err)
	}

	maxOpenConnections := float32(databaseConfig.ServerMaxConnections) * 0.8 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                             // 空闲连接约为最大连接的20%

	dbPool.SetMaxIdleConns(int(maxIdleConnections))
	dbPool.SetMaxOpenConns(int(maxOpenConnections))
	dbPool.SetConnMaxLifetime(databaseConfig.ConnectIdleDuration)
	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %w", err)
	}

	queryTimeout := databaseConfig.QueryDuration

	operations := NewDatabaseOperations(
		NewUserOperation(db, queryTimeout),
		NewAircraftOperation(db, queryTimeout),
		NewFlightOperation(db, queryTimeout),
		NewPreferencesOperation(db, queryTimeout),
		NewAuditLogOperation(db, queryTimeout),
		NewFeedbackOperation(db, queryTimeout),
	)

	return &DatabaseShutdownCallback{db: db}, operations, nil
}
