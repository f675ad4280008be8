package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
)

var (
	nameColor     = color.New(color.FgCyan)
	disabledColor = color.New(color.FgHiBlack)
	headingColor  = color.New(color.FgGreen, color.Bold)
	warnColor     = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

// printForm writes every field of f, then the session state that has no
// field of its own.
func printForm(w io.Writer, f *form.Form, path string) {
	fmt.Fprintln(w, headingColor.Sprintf("settings › %s", path))
	for _, name := range f.Names() {
		value := f.Value(name)
		if !f.Enabled(name) {
			fmt.Fprintf(w, "  %s %s\n", disabledColor.Sprintf("%-16s", name), disabledColor.Sprint(value+" (disabled)"))
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", nameColor.Sprintf("%-16s", name), value)
	}

	fmt.Fprintln(w, headingColor.Sprint("session"))
	fmt.Fprintf(w, "  %s %s\n", nameColor.Sprintf("%-16s", "bbox"), f.BBox)
	fmt.Fprintf(w, "  %s %.2f km²\n", nameColor.Sprintf("%-16s", "area"), f.Area)
	if len(f.LitterVariables) > 0 {
		fmt.Fprintf(w, "  %s %v\n", nameColor.Sprintf("%-16s", "litter vars"), f.LitterVariables)
	}

	resources := make([]string, 0, len(f.WeatherSettings))
	for name := range f.WeatherSettings {
		resources = append(resources, name)
	}
	sort.Strings(resources)
	for _, name := range resources {
		ws := f.WeatherSettings[name]
		fmt.Fprintf(w, "  %s %s %s-%s %s-%s\n", nameColor.Sprintf("%-16s", "weather "+name),
			ws.Scenario, ws.HistStartYr, ws.HistEndYr, ws.FutStartYr, ws.FutEndYr)
	}
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnColor.Sprintf(format, args...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorColor.Sprintf("error: %v", err))
}
