package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Parley.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (indigo to rose)
	s1 := termenv.String(`  ____   __   ____  __    ____  _  _ `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` (  _ \ / _\ (  _ \(  )  (  __)( \/ )`).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(`  ) __//    \ )   // (_/\ ) _)  )  / `).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(` (__)  \_/\_/(__\_)\____/(____)(__/  `).Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}
