// Package main provides tests for the slownie CLI.
package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/leapstack-labs/slownie/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "slownie") {
		t.Errorf("version output should contain 'slownie', got: %s", output)
	}
}

func TestConvertCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"convert", "--output", "text", "--", "-1234567891"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("convert command error = %v", err)
	}

	want := "minus miliard dwieście trzydzieści cztery miliony pięćset sześćdziesiąt siedem tysięcy osiemset dziewięćdziesiąt jeden\n"
	if got := buf.String(); got != want {
		t.Errorf("convert output = %q, want %q", got, want)
	}
}

func TestTableCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"table", "--output", "table", "--from", "1", "--to", "3"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("table command error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"jeden", "dwa", "trzy", "(3 rows)"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output should contain %q, got: %s", want, output)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	err := cmd.Execute()
	if err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
