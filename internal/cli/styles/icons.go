package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" //  browser/web
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconDesktop = "" // desktop
	IconCard    = "" // credit card
)
