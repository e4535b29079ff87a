// Package printers renders fetched data for the non-interactive commands.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

var dayTitles = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func resultSprint(r model.ClientResult) string {
	switch r {
	case model.ResultBought:
		return color.New(color.FgGreen).Sprint(r.Label())
	case model.ResultNotBought:
		return color.New(color.FgRed).Sprint(r.Label())
	case model.ResultPrepayment:
		return color.New(color.FgYellow).Sprint(r.Label())
	}
	return color.New(color.Faint).Sprint(r.Label())
}

// Week prints one week's board, one titled section per day.
func Week(w schedule.WeekWindow, cards []model.ClientCard) {
	b := schedule.Bucket(w, cards)

	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Printf("Week %s – %s\n\n", w.Start.Format("Jan 2"), w.End.Format("Jan 2, 2006"))

	for i, d := range w.Days {
		day := b.Day(schedule.DayKey(d))
		_, _ = title.Printf("%s %s", dayTitles[i], d.Format("Jan 2"))
		switch len(day) {
		case 0:
			_, _ = faint.Println(" - no lessons")
			continue
		case 1:
			_, _ = faint.Println(" - 1 lesson")
		default:
			_, _ = faint.Printf(" - %d lessons\n", len(day))
		}

		tbl := uitable.New()
		tbl.MaxColWidth = 40
		tbl.AddRow("  TIME", "CLIENT", "TEACHER", "MANAGER", "RESULT", "SCORE")
		for _, c := range day {
			score := ""
			if s := c.Score(); s != 0 {
				score = fmt.Sprintf("%d/10", s)
			}
			tbl.AddRow(
				"  "+c.LessonDatetime.Format("15:04"),
				c.Name,
				c.TeacherName,
				c.ManagerName,
				resultSprint(c.Result),
				score,
			)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}

	if b.Stray > 0 {
		warn := color.New(color.FgYellow)
		_, _ = warn.Printf("warning: %d record(s) outside the requested week were hidden\n", b.Stray)
	}
}

// Detail prints one client with their recordings.
func Detail(d model.ClientDetail) {
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	_, _ = title.Println(d.Name)
	_, _ = faint.Println(d.LessonDatetime.Format("Monday, Jan 2 2006 at 15:04"))
	if d.Result != model.ResultNone {
		fmt.Println(resultSprint(d.Result))
	}
	fmt.Println("")

	if len(d.Recordings) == 0 {
		_, _ = faint.Println("No recordings uploaded yet")
		return
	}
	for _, rec := range d.Recordings {
		header := rec.EmployeeRole.Label() + "  " + rec.EmployeeName
		if len(rec.Directions) > 0 {
			labels := make([]string, 0, len(rec.Directions))
			for _, dir := range rec.Directions {
				labels = append(labels, dir.Label())
			}
			header += " (" + strings.Join(labels, ", ") + ")"
		}
		_, _ = color.New(color.Bold).Println(header)

		if rec.Status != model.StatusDone {
			_, _ = faint.Println(rec.Status.Label())
			fmt.Println("")
			continue
		}
		if rec.Score != 0 {
			fmt.Printf("score %d/10\n", rec.Score)
		}
		if rec.Analysis != "" {
			fmt.Println(rec.Analysis)
		}
		fmt.Println("")
	}
}
