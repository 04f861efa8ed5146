package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd()
	assert.NotNil(t, cmd)

	var addCmd *cobra.Command
	for _, subcmd := range cmd.Commands() {
		if subcmd.Name() == "add" {
			addCmd = subcmd
			break
		}
	}

	assert.NotNil(t, addCmd, "add subcommand should exist")
}

func TestRootCommandTree(t *testing.T) {
	want := []string{
		"register", "login", "logout", "whoami",
		"add", "expenses", "top", "dashboard",
		"categories", "users", "version",
	}

	have := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		have[sub.Name()] = true
	}

	for _, name := range want {
		assert.True(t, have[name], "%s command should be registered", name)
	}
}
