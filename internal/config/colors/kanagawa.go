package colors

// palette holds the Kanagawa colors shared by the wave and dragon presets
var palette = struct {
	sumiInk1     string
	sumiInk4     string
	waveBlue1    string
	waveBlue2    string
	fujiWhite    string
	fujiGray     string
	oniViolet    string
	crystalBlue  string
	samuraiRed   string
	dragonBlack1 string
	dragonBlack4 string
	dragonWhite  string
	dragonAsh    string
	dragonViolet string
	dragonBlue2  string
	dragonRed    string
}{
	sumiInk1:     "#1F1F28",
	sumiInk4:     "#54546D",
	waveBlue1:    "#223249",
	waveBlue2:    "#2D4F67",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	samuraiRed:   "#E82424",
	dragonBlack1: "#0D0C0C",
	dragonBlack4: "#282727",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonRed:    "#C4746E",
}
