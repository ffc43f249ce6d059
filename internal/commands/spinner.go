package commands

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Gradient colors for animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}

var (
	colorText    = lipgloss.Color("#c0caf5")
	colorTextDim = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorFailure = lipgloss.Color("#f7768e")
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorWarning = lipgloss.Color("#e0af68")
)

// spinner handles the animated loading indicator for non-TUI commands.
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool // Flag to prevent double-close
}

// newSpinner creates a new animated spinner
func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(os.Stderr, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	spinIdx := s.frame % len(chars)
	spinColor := gradientColors[s.frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	text := lipgloss.NewStyle().Foreground(colorText).Render(" " + s.message + "...")

	fmt.Fprintf(os.Stderr, "\r\033[K%s%s", spin, text)
}

// halt stops the animation once; further calls are no-ops.
func (s *spinner) halt() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

// stopWithSuccess stops the spinner and prints a success mark.
func (s *spinner) stopWithSuccess(message string) {
	s.halt()
	mark := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
	fmt.Fprintf(os.Stderr, "%s %s\n", mark, message)
}

// stopWithError stops the spinner and prints a failure mark.
func (s *spinner) stopWithError() {
	s.halt()
	mark := lipgloss.NewStyle().Foreground(colorFailure).Render("✗")
	fmt.Fprintf(os.Stderr, "%s %s failed\n", mark, s.message)
}
