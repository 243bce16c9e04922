package create

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#9469ff")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 3)

	accentStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

func welcomeBanner() string {
	return boxStyle.Render("Build your perfect Minecraft Bedrock server with " +
		accentStyle.Render("SerenityJS!"))
}

func successBanner(projectName string) string {
	return boxStyle.Render("🎉 Successfully created " + accentStyle.Render(projectName) +
		"! Happy coding 💜")
}

func failureBanner() string {
	return failureStyle.Render("🚨 Failed to create project. See error above!")
}
