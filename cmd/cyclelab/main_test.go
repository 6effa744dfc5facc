package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(t *testing.T, root *cobra.Command, use string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == use {
			return c
		}
	}
	t.Fatalf("command %s not registered", use)
	return nil
}

func TestExportOutFlagsIndependent(t *testing.T) {
	root := newRootCmd()

	csvFlag := findCommand(t, root, "export-csv").Flags().Lookup("out")
	if csvFlag == nil {
		t.Fatal("export-csv has no --out flag")
	}
	xlsxFlag := findCommand(t, root, "export-xlsx").Flags().Lookup("out")
	if xlsxFlag == nil {
		t.Fatal("export-xlsx has no --out flag")
	}

	// export-csv writes to stdout when --out is empty; the xlsx default
	// must not bleed into it through a shared variable.
	if got := csvFlag.Value.String(); got != "" {
		t.Errorf("export-csv --out default: expected empty, got %q", got)
	}
	if got := xlsxFlag.Value.String(); got != "results.xlsx" {
		t.Errorf("export-xlsx --out default: expected results.xlsx, got %q", got)
	}
	if csvOut != "" {
		t.Errorf("csvOut after registration: expected empty, got %q", csvOut)
	}
	if xlsxOut != "results.xlsx" {
		t.Errorf("xlsxOut after registration: expected results.xlsx, got %q", xlsxOut)
	}
}
