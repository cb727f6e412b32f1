package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reportBook = `version: 1
selectors:
  - name: menu
    element: ul
    classes: [menu]
`

func prepareReport(t *testing.T, dir string) (*Report, string) {
	t.Helper()
	conf := &ReporterConfig{Destination: filepath.Join(dir, "selc-report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return rpt, conf.Destination
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report archive: %v", err)
	}
	defer zr.Close()

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open archive entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read archive entry %s: %v", f.Name, err)
		}
		got[f.Name] = string(data)
	}
	return got
}

func TestReport_ArchivesRecipeArtifacts(t *testing.T) {
	dir := t.TempDir()
	rpt, dst := prepareReport(t, dir)

	recipeFile := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(recipeFile, []byte(reportBook), 0644); err != nil {
		t.Fatalf("unable to write recipe file: %v", err)
	}
	if err := rpt.StoreCopy("recipes/menu.yaml", recipeFile); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	rpt.StoreData("results/menu.txt", []byte("ul.menu\n"))

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got := readArchive(t, dst)
	if m, ok := got["MANIFEST"]; !ok {
		t.Error("report is missing MANIFEST")
	} else if !strings.Contains(m, "recipes/menu.yaml") || !strings.Contains(m, "results/menu.txt") {
		t.Errorf("MANIFEST does not list stored entries:\n%s", m)
	}
	if got["recipes/menu.yaml"] != reportBook {
		t.Errorf("archived recipe = %q, want %q", got["recipes/menu.yaml"], reportBook)
	}
	if got["results/menu.txt"] != "ul.menu\n" {
		t.Errorf("archived results = %q, want %q", got["results/menu.txt"], "ul.menu\n")
	}
}

func TestReportClose_RemovesCopiedDirs(t *testing.T) {
	dir := t.TempDir()
	rpt, _ := prepareReport(t, dir)

	src := filepath.Join(dir, "recipes")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatalf("unable to create source dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "menu.yaml"), []byte(reportBook), 0644); err != nil {
		t.Fatalf("unable to write recipe file: %v", err)
	}
	if err := rpt.StoreCopy("recipes", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	copied := rpt.entries["recipes"].actual
	if copied == src {
		t.Fatal("StoreCopy() did not copy directory to a temporary location")
	}

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(copied); !os.IsNotExist(err) {
		os.RemoveAll(copied)
		t.Errorf("temporary copy %s was not removed on Close", copied)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("original directory should survive Close, got: %v", err)
	}
}

func TestReport_NilSafe(t *testing.T) {
	var r *Report
	r.Store("name", "path")
	r.StoreData("name", []byte("data"))
	if err := r.StoreCopy("name", "path"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if n := r.Name(); n != "" {
		t.Errorf("Name on nil report = %q, want empty", n)
	}

	if err := (&Report{entries: make(map[string]entry)}).Close(); err != nil {
		t.Errorf("Close without underlying file should not error, got: %v", err)
	}
}
