package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/secmon-lab/rollcall/pkg/domain/model/alert"
	"github.com/secmon-lab/rollcall/pkg/domain/model/post"
	"github.com/secmon-lab/rollcall/pkg/domain/model/roster"
	"github.com/secmon-lab/rollcall/pkg/domain/types"
)

var (
	colorHeader     = color.New(color.Bold)
	colorComplete   = color.New(color.FgGreen)
	colorIncomplete = color.New(color.FgRed, color.Bold)
	colorUndefined  = color.New(color.FgYellow)
	colorArchived   = color.New(color.FgHiBlack)
)

func statusText(status types.PostStatus) string {
	switch status {
	case types.PostStatusComplete:
		return colorComplete.Sprint(status)
	case types.PostStatusIncomplete:
		return colorIncomplete.Sprint(status)
	default:
		return colorUndefined.Sprint(status)
	}
}

func roomNames(rooms []post.Room) string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func printRow(w io.Writer, class string, start, end types.ClockTime, teachers []string, rooms []post.Room, status types.PostStatus) {
	fmt.Fprintf(w, "%-8s %s-%s  %-30s %-20s %s\n",
		class,
		start, end,
		strings.Join(teachers, ", "),
		roomNames(rooms),
		statusText(status),
	)
}

func printEntries(w io.Writer, entries roster.Entries) {
	colorHeader.Fprintf(w, "Preview: %d classes\n", len(entries))
	for _, e := range entries {
		printRow(w, e.Class.Number, e.Start, e.End, e.Teachers, e.Rooms, e.Status)
	}
}

func printRoster(w io.Writer, a *alert.Alert, posts post.Posts) {
	colorHeader.Fprintf(w, "Alert %s: %d classes\n", a.ID, len(posts))
	for _, p := range posts {
		printRow(w, p.Class.Number, p.Start, p.End, p.Teachers, p.Rooms, p.Status)
		if p.Comment != "" {
			fmt.Fprintf(w, "         %s\n", p.Comment)
		}
	}
}

// printHistory lists alerts newest first with times relative to now.
func printHistory(w io.Writer, alerts alert.Alerts, now time.Time) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts")
		return
	}

	colorHeader.Fprintf(w, "%d alerts\n", len(alerts))
	for _, a := range alerts {
		state := colorIncomplete.Sprint("live")
		if a.Archived {
			state = colorArchived.Sprint("archived")
		}
		fmt.Fprintf(w, "%s  %-8s %-16s by %-12s %s %s %s / %d\n",
			a.ID,
			state,
			humanize.RelTime(a.CreatedAt, now, "ago", "from now"),
			a.TriggeredBy,
			colorComplete.Sprintf("%d complete", a.Stats.Complete),
			colorIncomplete.Sprintf("%d incomplete", a.Stats.Incomplete),
			colorUndefined.Sprintf("%d undefined", a.Stats.Undefined),
			a.Stats.Total,
		)
	}
}
