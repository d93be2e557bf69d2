package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadProgramFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "card.lua")
	if err := os.WriteFile(valid, []byte("\nreturn function(r) print('round: ' .. r) end\n"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	program, err := ReadProgramFile(valid)
	if err != nil {
		t.Fatalf("ReadProgramFile() error: %v", err)
	}
	if program != "return function(r) print('round: ' .. r) end" {
		t.Errorf("ReadProgramFile() = %q", program)
	}

	empty := filepath.Join(dir, "empty.lua")
	if err := os.WriteFile(empty, []byte("  \n"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := ReadProgramFile(empty); err == nil {
		t.Error("ReadProgramFile() expected error for empty program")
	}

	large := filepath.Join(dir, "large.lua")
	if err := os.WriteFile(large, []byte(strings.Repeat("a", int(MaxProgramSize)+1)), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := ReadProgramFile(large); err == nil {
		t.Error("ReadProgramFile() expected error for oversized program")
	}

	if _, err := ReadProgramFile(filepath.Join(dir, "missing.lua")); err == nil {
		t.Error("ReadProgramFile() expected error for missing file")
	}
}

func TestParseProgram_InvalidUTF8(t *testing.T) {
	if _, err := ParseProgram([]byte{0xff, 0xfe}); err == nil {
		t.Error("ParseProgram() expected error for invalid UTF-8")
	}
}
