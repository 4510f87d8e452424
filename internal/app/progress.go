package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// startProgress animates a spinner on w showing processed/total units
// until the returned function is called.
func startProgress(w io.Writer, label string, total int64, processed *atomic.Int64) (stop func()) {
	var spinnerWg sync.WaitGroup
	spinnerWg.Add(1)
	done := make(chan struct{})
	startTime := time.Now()

	go func() {
		defer spinnerWg.Done()
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s %s complete. %d/%d units processed.\n", "✓", label, processed.Load(), total)
				return
			case <-ticker.C:
				s, _ = s.Update(spinner.TickMsg{})
				n := processed.Load()
				elapsed := time.Since(startTime).Seconds()
				var ups float64
				if elapsed > 0 {
					ups = float64(n) / elapsed
				}
				fmt.Fprintf(w, "\r%s %s %d/%d... (%.2f units/s)", s.View(), label, n, total, ups)
			}
		}
	}()

	return func() {
		close(done)
		spinnerWg.Wait()
	}
}

func printSummary(w io.Writer, units int64, duration time.Duration) {
	durationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	speedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	fmt.Fprintf(w, "Total processing time: %s\n", durationStyle.Render(fmt.Sprintf("%.4fs", duration.Seconds())))
	if seconds := duration.Seconds(); seconds > 0 {
		fmt.Fprintf(w, "Units per second: %s\n", speedStyle.Render(fmt.Sprintf("%.2f", float64(units)/seconds)))
	}
}
