package main

import (
	"encoding/hex"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/seedable/pseudorandom/seed"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// SeedCmd derives the seed for a value and shows how it was computed.
type SeedCmd struct {
	seedFlags

	Bytes bool `kong:"help='Dump the full canonical encoding'"`
}

func (c *SeedCmd) Run() error {
	v, err := c.seedValue()
	if err != nil {
		return err
	}
	value := seed.Normalize(v)
	encoded := seed.Encode(value)

	impl := seed.Accelerated
	if c.Encoder == "reference" {
		impl = seed.Reference
	}
	derived := seed.DeriveWith(value, impl)

	row := func(label, val string) {
		fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), val)
	}
	row("kind", value.Kind().String())
	row("encoded", fmt.Sprintf("%d bytes", len(encoded)))
	row("encoder", dimStyle.Render(impl.String()))
	row("seed", valueStyle.Render(fmt.Sprintf("%d", derived)))

	if c.Bytes {
		fmt.Println(dimStyle.Render(hex.Dump(encoded)))
	}
	return nil
}
