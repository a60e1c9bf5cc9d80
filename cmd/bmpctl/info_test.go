package main

import (
	"encoding/hex"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	sample, err := hex.DecodeString(sampleHeaderHex)
	if err != nil {
		t.Fatal(err)
	}
	badMagic := append([]byte("XX"), sample[2:]...)

	tests := []struct {
		name           string
		files          map[string][]byte
		strict         bool
		quiet          bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:  "windows bitmap",
			files: map[string][]byte{"test.bmp": sample},
			wantContain: []string{
				"Bitmap Header:", "Windows bitmap",
				"FIELD", "fileSize", "144056", "dataOffset", "54",
				"width", "480", "height", "100", "colorCount", "24",
				"'B' (0x42)", "'M' (0x4D)",
				"is 141 kb.",
			},
		},
		{
			name:        "json output",
			files:       map[string][]byte{"test.bmp": sample},
			wantJSON:    true,
			wantContain: []string{`"signature": "BM"`, `"size_kb": 141`, `"width": 480`, `"color_count": 24`},
			wantNotContain: []string{
				"Bitmap Header:",
			},
		},
		{
			name:           "truncated file",
			files:          map[string][]byte{"short.bmp": sample[:10]},
			wantErr:        true,
			wantNotContain: []string{"Bitmap Header:"},
		},
		{
			name:    "truncated file as json",
			files:   map[string][]byte{"short.bmp": sample[:10]},
			wantErr: true, wantJSON: true,
			wantContain: []string{`"error": `, "truncated header: got 10 bytes, want 30"},
		},
		{
			name:        "lenient accepts unknown magic",
			files:       map[string][]byte{"odd.bmp": badMagic},
			wantContain: []string{"Kind: unknown", "'X' (0x58)"},
		},
		{
			name:    "strict rejects unknown magic",
			files:   map[string][]byte{"odd.bmp": badMagic},
			strict:  true,
			wantErr: true,
		},
		{
			name:           "quiet suppresses output",
			files:          map[string][]byte{"test.bmp": sample},
			quiet:          true,
			wantNotContain: []string{"Bitmap Header:", "144056"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			strict = tt.strict
			quiet = tt.quiet
			jsonOut = tt.wantJSON

			var args []string
			for name, data := range tt.files {
				args = append(args, writeBitmap(t, name, data))
			}

			output, err := captureOutput(t, func() error {
				return runInfo(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runInfo() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestInfoProcessesAllFiles(t *testing.T) {
	resetFlags()

	good := sampleBitmap(t)
	bad := writeBitmap(t, "bad.bmp", []byte("BM"))

	output, err := captureOutput(t, func() error {
		return runInfo([]string{bad, good})
	})
	if err == nil {
		t.Fatalf("expected error for the truncated file")
	}
	assertContains(t, output, []string{good, "480"})
	assertContains(t, err.Error(), []string{"1 of 2 file(s)"})
}
