package cli

import (
	"fmt"
	"os"

	"github.com/pellegrino/hamster/internal/storage"
)

type InitCmd struct {
	Empty bool `help:"Skip installing the starter routine set."`
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized hamster storage at: %s\n", ctx.Store.GetConfigPath())

	if !c.Empty {
		seeds := storage.DefaultRoutines()
		if err := ctx.Store.SaveRoutines(seeds); err != nil {
			return fmt.Errorf("failed to install starter routines: %w", err)
		}
		fmt.Printf("Installed %d starter routines. Run 'hamster routine list' to see them.\n", len(seeds))
	}

	return nil
}
