package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/yuchenli/fupan/internal/backup"
	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: schema version
	if err := checkSchemaVersion(ctx); err != nil {
		fmt.Printf("❌ Schema version: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schema version: OK\n")
	}

	// Check 3: data validation (warning only, only with a reachable store)
	if storeReachable {
		if report := validationReport(ctx); report != "" {
			fmt.Printf("⚠ Data validation: WARNING\n")
			for _, line := range strings.Split(strings.TrimRight(report, "\n"), "\n") {
				fmt.Printf("   %s\n", line)
			}
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (store not reachable)\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: concurrent processes (warning only)
	if err := checkOtherProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	if storeReachable {
		ctx.Store.Close()
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// For SQLite, also run a trivial query over the open connection.
	if sqliteStore, ok := ctx.Store.(*kv.SQLiteStore); ok {
		db := sqliteStore.DB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*kv.SQLiteStore)
	if !ok {
		// The JSON store verifies its version on load.
		return nil
	}

	version, err := sqliteStore.UserVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > kv.SchemaVersion {
		return fmt.Errorf("data schema version (%d) is newer than supported version (%d)", version, kv.SchemaVersion)
	}

	return nil
}

// validationReport collects plan and question config conflicts. These
// never fail the doctor run; stored data stays usable regardless.
func validationReport(ctx *Context) string {
	validator := validation.New()

	var report strings.Builder
	if plan, ok := ctx.Records.LoadPlan(); ok {
		if result := validator.ValidatePlan(plan); result.HasConflicts() {
			report.WriteString(result.FormatReport())
		}
	}
	if result := validator.ValidateConfig(ctx.Questions.Daily(), ctx.Questions.Deep()); result.HasConflicts() {
		report.WriteString(result.FormatReport())
	}

	return report.String()
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'fupan backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// Streaks and dates are computed in local time; UTC may be intentional.
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}

// checkOtherProcesses warns when another fupan process is running.
// Neither store flavor takes an exclusive lock, so concurrent writers
// can clobber each other's saves.
func checkOtherProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), "fupan") {
			return fmt.Errorf("another fupan process is running (PID %d); concurrent writes may be lost", p.Pid())
		}
	}

	return nil
}
