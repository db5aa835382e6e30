package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	noticeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#36CFC9"))
	noticeErrorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF0000"))
	noticeTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})
)

// ErrorTitle is the notice title used for failures.
const ErrorTitle = "Error"

// NoticeBar shows the latest message from a command. It implements menu.Notifier.
// Each message gets a new sequence number so a timed clear only removes the
// message it was scheduled for.
type NoticeBar struct {
	title   string
	message string
	seq     int
	width   int
}

// NewNoticeBar creates an empty notice bar.
func NewNoticeBar() *NoticeBar {
	return &NoticeBar{}
}

// Notify replaces the current message.
func (n *NoticeBar) Notify(title, message string) {
	n.title = title
	n.message = message
	n.seq++
}

// Seq returns the sequence number of the current message.
func (n *NoticeBar) Seq() int {
	return n.seq
}

// Clear removes the message if it is still the one numbered seq.
func (n *NoticeBar) Clear(seq int) {
	if seq != n.seq {
		return
	}
	n.title = ""
	n.message = ""
}

// Empty reports whether there is no message to show.
func (n *NoticeBar) Empty() bool {
	return n.message == "" && n.title == ""
}

// Message returns the current title and message.
func (n *NoticeBar) Message() (string, string) {
	return n.title, n.message
}

// SetWidth sets the width the bar truncates to.
func (n *NoticeBar) SetWidth(width int) {
	n.width = width
}

func (n *NoticeBar) String() string {
	if n.Empty() {
		return ""
	}
	titleStyle := noticeTitleStyle
	if n.title == ErrorTitle {
		titleStyle = noticeErrorStyle
	}
	msg := strings.ReplaceAll(n.message, "\n", " ")
	line := titleStyle.Render(n.title+":") + " " + noticeTextStyle.Render(msg)
	if n.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(n.width).Render(line)
	}
	return line
}

// PrintNotifier writes notices as "title: message" lines.
type PrintNotifier struct {
	W io.Writer
}

// Notify writes one notice line.
func (p PrintNotifier) Notify(title, message string) {
	fmt.Fprintf(p.W, "%s: %s\n", title, message)
}
