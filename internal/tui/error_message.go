package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// toastTTL is how long a toast stays in the status line.
const toastTTL = 30 * time.Second

// ToastKind selects the color of a toast.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is a transient status-line notification.
type Toast struct {
	Text string
	Kind ToastKind
	At   time.Time
}

// Active reports whether the toast is still within its display window.
func (t Toast) Active(now time.Time) bool {
	return t.Text != "" && now.Sub(t.At) < toastTTL
}

func (t Toast) render() string {
	color := ColorWhite
	switch t.Kind {
	case ToastSuccess:
		color = ColorGreen
	case ToastError:
		color = lipgloss.Color("#FF6666")
	}
	return lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(color).
		Render(t.Text)
}

// errorToast builds an error toast stamped now.
func errorToast(text string) Toast {
	return Toast{Text: text, Kind: ToastError, At: time.Now()}
}

var (
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRed).
			Padding(0, 1)

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)

// RenderErrorMessage renders a bordered error block. A width of 0 sizes the
// block to its content. An empty message renders nothing.
func RenderErrorMessage(title, message string, width int) string {
	if message == "" {
		return ""
	}
	if title == "" {
		title = "Error"
	}

	box := errorBoxStyle
	text := errorTextStyle
	if width > 4 {
		box = box.Width(width - 2)
		text = text.Width(width - 4)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		errorTitleStyle.Render("✗ "+title),
		text.Render(message),
	))
}
