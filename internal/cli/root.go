package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuchenli/fupan/internal/backup"
	"github.com/yuchenli/fupan/internal/kv"
	"github.com/yuchenli/fupan/internal/questions"
	"github.com/yuchenli/fupan/internal/repository"
)

type Context struct {
	Store     kv.Store
	Records   *repository.Repository
	Questions *questions.Store
}

// PerformAutomaticBackup creates a backup without interrupting the
// user's workflow; failures become a warning.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveDate maps "today" or a YYYY-MM-DD string to a canonical date.
func resolveDate(s string) (string, error) {
	if s == "today" {
		return time.Now().Format("2006-01-02"), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return d.Format("2006-01-02"), nil
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// readLine reads one trimmed line from stdin.
func readLine() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
