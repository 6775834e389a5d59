package app

// Zone ids rendered by the demo screen
const (
	screenZone = "screen"
	rowsZone   = "rows"
	searchZone = "search"
	helpButton = "btn-help"

	menuID    = "menu"
	suggestID = "suggest"
)

// Popup names, in the order they receive messages
var popupNames = []string{"toolbar", "rows", "menu", "search", "help"}

// popupWidths fixes the inner width of some popups
var popupWidths = map[string]int{
	"menu":   18,
	"search": 20,
	"help":   50,
}

type button struct {
	id    string
	label string
	about string
}

var toolbarButtons = []button{
	{id: "btn-file", label: "File", about: "Hovering File keeps this open.\nMove onto the popup and it stays."},
	{id: "btn-edit", label: "Edit", about: "Edit moves the same popup here.\nOne surface, many triggers."},
	{id: "btn-view", label: "View", about: "View shows after a short delay\nand hides after the same delay."},
}

var menuButtons = []button{
	{id: "btn-new", label: "New ▾"},
	{id: "btn-open", label: "Open ▾"},
}

type menuEntry struct {
	key   string
	label string
}

// menuEntries lists what the shared click menu offers for each trigger
var menuEntries = map[string][]menuEntry{
	"btn-new": {
		{key: "n", label: "File"},
		{key: "f", label: "Folder"},
		{key: "w", label: "Window"},
	},
	"btn-open": {
		{key: "r", label: "Recent"},
		{key: "b", label: "Browse"},
		{key: "u", label: "URL"},
	},
}

type service struct {
	name   string
	status string
	detail string
}

var services = []service{
	{name: "api", status: "running", detail: "3 replicas, p99 41ms"},
	{name: "worker", status: "running", detail: "queue depth 12"},
	{name: "scheduler", status: "degraded", detail: "2 jobs late"},
	{name: "cache", status: "running", detail: "hit rate 94%"},
	{name: "gateway", status: "stopped", detail: "stopped by deploy 14:02"},
}

// suggestions feed the search popup
var suggestions = []string{
	"hover", "tooltip", "click", "focus", "blur",
	"delay", "delegate", "align", "transition", "dismiss",
	"trigger", "surface", "disabled", "outside press",
}

const maxSuggestions = 5

const helpText = `# Popups

- **Toolbar**: hover File, Edit or View.
- **Rows**: hover a service for an instant tooltip.
- **New / Open**: click to toggle a shared menu.
- **Search**: focus with tab or a click.

Press **d** to disable every popup, **esc** to close one.
`
