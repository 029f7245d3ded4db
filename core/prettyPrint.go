package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/giuseppe/syscontainer-build/core/logger"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			MarginTop(1).
			Padding(0, 1)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				MarginLeft(1).
				MarginTop(1).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				BorderBottom(true)

	keyStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Foreground(lipgloss.Color("13"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Margin(0, 1)

	fileStyle = lipgloss.NewStyle().
			MarginLeft(1)

	warningStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Foreground(lipgloss.Color("11"))
)

type PrintOptions struct {
	Version string
}

func PrettyPrintGenerateResult(result *GenerateResult, options ...PrintOptions) {
	fmt.Print(FormatGenerateResult(result, options...))
}

func FormatGenerateResult(result *GenerateResult, options ...PrintOptions) string {
	var opts PrintOptions
	if len(options) > 0 {
		opts = options[0]
	}

	var output strings.Builder

	header := "syscontainer-build"
	if opts.Version != "" {
		header = fmt.Sprintf("syscontainer-build %s", opts.Version)
	}
	output.WriteString(headerStyle.Render(header))
	output.WriteString("\n")

	if result.Manifest != nil && result.Manifest.DefaultValues.Len() > 0 {
		output.WriteString(sectionHeaderStyle.Render("Defaults"))
		output.WriteString("\n")

		keyWidth := 1
		for pair := result.Manifest.DefaultValues.Oldest(); pair != nil; pair = pair.Next() {
			keyWidth = max(keyWidth, len(pair.Key))
		}

		separator := separatorStyle.Render("│")
		styledKey := keyStyle.Width(keyWidth).MaxWidth(30)

		for pair := result.Manifest.DefaultValues.Oldest(); pair != nil; pair = pair.Next() {
			output.WriteString(fmt.Sprintf("%s%s%s",
				styledKey.Render(pair.Key), separator, valueStyle.Render(pair.Value)))
			output.WriteString("\n")
		}
	}

	if len(result.Files) > 0 {
		output.WriteString(sectionHeaderStyle.Render("Files"))
		output.WriteString("\n")

		for _, file := range result.Files {
			output.WriteString(fileStyle.Render(file))
			output.WriteString("\n")
		}
	}

	warningCount := 0
	for _, msg := range result.Diagnostics {
		if msg.Level == logger.Warn {
			warningCount++
		}
	}
	if warningCount > 0 {
		output.WriteString(sectionHeaderStyle.Render("Warnings"))
		output.WriteString("\n")

		for _, msg := range result.Diagnostics {
			if msg.Level == logger.Warn {
				output.WriteString(warningStyle.Render(msg.Msg))
				output.WriteString("\n")
			}
		}
	}

	return output.String()
}
