package banner

import "github.com/fatih/color"

func GetBanner() string {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	banner := `
` + green(`  ┌─┐┌─┐┌─┐┬ ┬┬─┐┌─┐  ┬  ┬  ┌┬┐  ┌─┐┬ ┬┌┬┐┌─┐┬ ┬┌┬┐
  └─┐├┤ │  │ │├┬┘├┤   │  │  │││  │ ││ │ │ ├─┘│ │ │
  └─┘└─┘└─┘└─┘┴└─└─┘  ┴─┘┴─┘┴ ┴  └─┘└─┘ ┴ ┴  └─┘ ┴`) + `

        ` + yellow(`Insecure output handling demo (reflected injection)`) + `

` + cyan(`  The page echoes whatever you submit, unescaped. For local testing only.`) + `
`
	return banner
}
