// Package wire provides dependency injection for the P2H application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/adapters/audit"
	cliadapter "github.com/PT-IMM-P2H/backend/internal/adapters/cli"
	"github.com/PT-IMM-P2H/backend/internal/adapters/postgres"
	"github.com/PT-IMM-P2H/backend/internal/adapters/sqlite"
	"github.com/PT-IMM-P2H/backend/internal/app"
	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/config"
	"github.com/PT-IMM-P2H/backend/internal/db"
	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

var (
	cfg              *config.Config
	logger           *logrus.Logger
	p2hService       primary.P2HService
	vehicleService   primary.VehicleService
	checklistService primary.ChecklistService
	expiryService    primary.ExpiryService
	dashboardService primary.DashboardService
	logService       primary.AuditLogService
	once             sync.Once
)

// repositories groups the storage adapters of one driver.
type repositories struct {
	vehicles  secondary.VehicleRepository
	checklist secondary.ChecklistRepository
	reports   secondary.ReportRepository
	auditLogs secondary.AuditLogRepository
}

func newRepositories(driver string, database *sql.DB) repositories {
	if driver == db.DriverPostgres {
		return repositories{
			vehicles:  postgres.NewVehicleRepository(database),
			checklist: postgres.NewChecklistRepository(database),
			reports:   postgres.NewReportRepository(database),
			auditLogs: postgres.NewAuditLogRepository(database),
		}
	}
	return repositories{
		vehicles:  sqlite.NewVehicleRepository(database),
		checklist: sqlite.NewChecklistRepository(database),
		reports:   sqlite.NewReportRepository(database),
		auditLogs: sqlite.NewAuditLogRepository(database),
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the application logger.
func Logger() *logrus.Logger {
	once.Do(initServices)
	return logger
}

// P2HService returns the singleton P2HService instance.
func P2HService() primary.P2HService {
	once.Do(initServices)
	return p2hService
}

// VehicleService returns the singleton VehicleService instance.
func VehicleService() primary.VehicleService {
	once.Do(initServices)
	return vehicleService
}

// ChecklistService returns the singleton ChecklistService instance.
func ChecklistService() primary.ChecklistService {
	once.Do(initServices)
	return checklistService
}

// ExpiryService returns the singleton ExpiryService instance.
func ExpiryService() primary.ExpiryService {
	once.Do(initServices)
	return expiryService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// LogService returns the singleton AuditLogService instance.
func LogService() primary.AuditLogService {
	once.Do(initServices)
	return logService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	database, err := db.OpenAndInit(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	logger.WithField("driver", cfg.DBDriver).Debug("database ready")

	// Create repository adapters (secondary ports) with injected DB
	repos := newRepositories(cfg.DBDriver, database)
	logWriter := audit.NewLogWriterAdapter(repos.auditLogs)
	clk := &clock.System{Location: cfg.Location}

	// Create services (primary ports implementation)
	p2hService = app.NewP2HService(repos.vehicles, repos.checklist, repos.reports, logWriter, clk, logger)
	vehicleService = app.NewVehicleService(repos.vehicles, logWriter, logger)
	checklistService = app.NewChecklistService(repos.checklist, logWriter, logger)
	expiryService = app.NewExpiryService(repos.vehicles, cfg.ExpiryThresholds, clk, logger)
	dashboardService = app.NewDashboardService(repos.vehicles, repos.reports, clk, logger)
	logService = app.NewLogService(repos.auditLogs)
}

// VehicleAdapter returns a new VehicleAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func VehicleAdapter() *cliadapter.VehicleAdapter {
	return VehicleAdapterWithOutput(os.Stdout)
}

// VehicleAdapterWithOutput returns a new VehicleAdapter writing to the given output.
func VehicleAdapterWithOutput(out io.Writer) *cliadapter.VehicleAdapter {
	once.Do(initServices)
	return cliadapter.NewVehicleAdapter(vehicleService, expiryService, out)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(p2hService, vehicleService, out)
}

// ChecklistAdapter returns a new ChecklistAdapter writing to stdout.
func ChecklistAdapter() *cliadapter.ChecklistAdapter {
	once.Do(initServices)
	return cliadapter.NewChecklistAdapter(checklistService, os.Stdout)
}

// DashboardAdapter returns a new DashboardAdapter writing to stdout.
func DashboardAdapter() *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(dashboardService, expiryService, os.Stdout)
}

// LogAdapter returns a new LogAdapter writing to stdout.
func LogAdapter() *cliadapter.LogAdapter {
	once.Do(initServices)
	return cliadapter.NewLogAdapter(logService, os.Stdout)
}
