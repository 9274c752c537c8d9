package main

import (
	"fmt"
	"sort"

	"github.com/seedable/pseudorandom/profile"
)

// ProfileCmd renders one or more generation profile files.
type ProfileCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"Profile files to render"`
}

func (c *ProfileCmd) Run() error {
	all, err := profile.RenderAll(c.Paths)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(all))
	for path := range all {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if len(paths) > 1 {
			fmt.Printf("%s:\n", labelStyle.Render(path))
		}
		for _, r := range all[path] {
			fmt.Printf("%s = %s\n", r.Name, valueStyle.Render(r.Value))
		}
	}
	return nil
}
