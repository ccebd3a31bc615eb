package runstore

import (
	"fmt"

	"github.com/gitpulse/gitpulse/schema"
)

// PrintRunStatus prints run store status information.
func PrintRunStatus(status schema.RunStatus) {
	fmt.Printf("Run Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Commits Folded: %d\n", status.TotalCommits)
	}
	fmt.Printf("Weekly Stat Rows: %d\n", status.TotalCells)
	if status.TableSizeBytes > 0 {
		fmt.Printf("Database Size: %d bytes\n", status.TableSizeBytes)
	}
}
