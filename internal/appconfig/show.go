package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Results Dir:        %s\n", cfg.Results())
	fmt.Fprintf(out, "  Output Dir:         %s\n", cfg.Output())
	fmt.Fprintf(out, "  Template Dir:       %s\n", orNone(cfg.TemplateDir))
	fmt.Fprintf(out, "  Include Benchmarks: %v\n", cfg.IncludeBenchmarks)
	if cfg.IncludeBenchmarks {
		fmt.Fprintf(out, "  Benchmarks Dir:     %s\n", orNone(cfg.BenchmarksDir))
	}
	fmt.Fprintf(out, "  Labels File:        %s\n", orNone(cfg.LabelsFile))
	fmt.Fprintf(out, "  Reference Model:    %s\n", cfg.Reference())
	fmt.Fprintf(out, "  Max Lead Days:      %d\n", cfg.LeadDayLimit())
	fmt.Fprintf(out, "  Color Map:          %s\n", cfg.ColorMapName())
	fmt.Fprintf(out, "  Debug:              %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:           %s\n", cfg.LogFilePath())
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
