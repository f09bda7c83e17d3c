package main

import (
	"hero-lab/domain"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func renderHeroes(w io.Writer, heroes []domain.Hero) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(lo.Map(heroes, func(h domain.Hero, _ int) []string {
		return []string{strconv.Itoa(h.ID), h.Name}
	}))
	table.Render()
}

// renderMessages prints the message log, failures in red when colours are on.
func renderMessages(w io.Writer, messages []string, colours bool) {
	for _, message := range messages {
		line := message
		if colours {
			style := color.New(color.FgGreen)
			if strings.Contains(message, " failed: ") {
				style = color.New(color.FgRed, color.OpBold)
			}
			line = style.Render(message)
		}
		_, _ = io.WriteString(w, line+"\n")
	}
}
