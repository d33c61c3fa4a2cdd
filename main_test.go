package main

import (
	"flag"
	"testing"

	"termsweep/config"
)

func TestApplyFlags(t *testing.T) {
	defer func() {
		flag.CommandLine.Set("size", "0")
		flag.CommandLine.Set("mines", "-1")
		flag.CommandLine.Set("seed", "0")
	}()

	c := config.DefaultConfig
	applyFlags(&c)
	if c.Game != config.DefaultConfig.Game {
		t.Fatalf("unset flags should keep the config, got %+v", c.Game)
	}

	flag.CommandLine.Set("size", "12")
	flag.CommandLine.Set("mines", "0")
	flag.CommandLine.Set("seed", "5")
	applyFlags(&c)
	if c.Game.Size != 12 || c.Game.Mines != 0 || c.Game.Seed != 5 {
		t.Fatalf("flags not applied: %+v", c.Game)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
