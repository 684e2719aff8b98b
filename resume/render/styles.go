package render

// Palette captures the colours a template is designed around, as hex
// without the leading '#'.
type Palette struct {
	Sidebar string `json:"sidebar,omitempty"`
	Accent  string `json:"accent,omitempty"`
	Text    string `json:"text,omitempty"`
}

const (
	SandColor     = "e9e5d9"
	GoldColor     = "b29b7d"
	TanColor      = "b0a48a"
	DarkTextColor = "333333"
	GreyDarkColor = "4b5563"
	GreyMedColor  = "6b7280"
)

// Palettes maps each built-in template to its palette. Renderers emit class
// names only; the palette is published through the catalog for clients that
// style the markup.
var Palettes = map[string]Palette{
	Template1ID: {Sidebar: SandColor, Accent: GoldColor, Text: DarkTextColor},
	Template2ID: {Sidebar: TanColor, Accent: GreyDarkColor, Text: DarkTextColor},
	Template3ID: {Accent: GreyDarkColor, Text: DarkTextColor},
	Template4ID: {Sidebar: TanColor, Accent: GreyMedColor, Text: GreyDarkColor},
}
