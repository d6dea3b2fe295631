package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jolt/internal/driver"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] [name...]",
	Short: "Validate or repair candidate identifiers",
	Long: `Verify checks that each candidate name is a legal, non-reserved
identifier and proposes a repaired spelling for the ones that are not.
Candidates come from arguments, or from newline-separated name lists
given with --file.`,
	RunE: runVerify,
}

var (
	verifyFiles  []string
	verifyModule bool
	verifyES3    bool
	verifyNFC    bool
	verifyFormat string
	verifyOut    string
)

func init() {
	verifyCmd.Flags().StringArrayVar(&verifyFiles, "file", nil, "newline-separated name list (repeatable)")
	verifyCmd.Flags().BoolVar(&verifyModule, "module", false, "classify names under module rules (reserves await)")
	verifyCmd.Flags().BoolVar(&verifyES3, "es3", false, "also report the legacy ES3 reserved layer")
	verifyCmd.Flags().BoolVar(&verifyNFC, "nfc", false, "NFC-normalize names before checking")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "pretty", "output format (pretty|json)")
	verifyCmd.Flags().StringVar(&verifyOut, "out", "", "write the resulting identifier table to this file (msgpack)")
}

// verifyOptions merges manifest defaults with explicit flags; flags win.
func verifyOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.Options{}

	manifest, ok, err := loadProjectManifest("")
	if err != nil {
		return opts, err
	}
	if ok {
		opts.Module = manifest.Config.Verify.Module
		opts.ES3 = manifest.Config.Verify.ES3
		opts.NFC = manifest.Config.Verify.NFC
	}

	flags := cmd.Flags()
	if flags.Changed("module") {
		opts.Module = verifyModule
	}
	if flags.Changed("es3") {
		opts.ES3 = verifyES3
	}
	if flags.Changed("nfc") {
		opts.NFC = verifyNFC
	}
	return opts, nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	switch verifyFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", verifyFormat)
	}
	if len(args) == 0 && len(verifyFiles) == 0 {
		return fmt.Errorf("no names given: pass names as arguments or use --file")
	}

	opts, err := verifyOptions(cmd)
	if err != nil {
		return err
	}

	var reports []*driver.FileReport
	if len(args) > 0 {
		reports = append(reports, &driver.FileReport{
			Path:  "<args>",
			Names: driver.VerifyNames(args, opts),
		})
	}
	if len(verifyFiles) > 0 {
		fileReports, err := driver.VerifyFiles(cmd.Context(), verifyFiles, opts)
		if err != nil {
			return err
		}
		reports = append(reports, fileReports...)
	}

	if verifyOut != "" {
		if err := driver.BuildTable(reports).WriteTable(verifyOut); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}

	invalid := 0
	for _, r := range reports {
		for _, res := range r.Names {
			if !res.OK {
				invalid++
			}
		}
	}

	switch verifyFormat {
	case "json":
		if err := writeVerifyJSON(cmd.OutOrStdout(), reports); err != nil {
			return err
		}
	default:
		writeVerifyPretty(cmd, reports)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of the given names need repair", invalid)
	}
	return nil
}

func writeVerifyPretty(cmd *cobra.Command, reports []*driver.FileReport) {
	out := os.Stdout
	okColor := color.New(color.FgGreen)
	fixColor := color.New(color.FgYellow, color.Bold)
	noteColor := color.New(color.FgCyan)
	if !useColor(cmd, out) {
		okColor.DisableColor()
		fixColor.DisableColor()
		noteColor.DisableColor()
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	for _, r := range reports {
		for _, res := range r.Names {
			note := ""
			if layers := res.Reserved.Strings(); len(layers) > 0 {
				note = noteColor.Sprintf("  [%s]", strings.Join(layers, " "))
			}
			pos := ""
			if r.FileSet != nil && !res.Span.IsDummy() {
				pos = "  " + r.FileSet.Position(res.Span)
			}
			if res.OK {
				if !quiet {
					fmt.Fprintf(out, "%s %s%s%s\n", okColor.Sprint("ok "), res.Name, note, pos)
				}
				continue
			}
			fmt.Fprintf(out, "%s %s -> %s%s%s\n", fixColor.Sprint("fix"), res.Name, res.Corrected, note, pos)
		}
	}
}

type verifyPayload struct {
	Name      string   `json:"name"`
	OK        bool     `json:"ok"`
	Corrected string   `json:"corrected,omitempty"`
	Reserved  []string `json:"reserved,omitempty"`
	Pos       string   `json:"pos,omitempty"`
}

func writeVerifyJSON(out io.Writer, reports []*driver.FileReport) error {
	payload := make([]verifyPayload, 0, len(reports))
	for _, r := range reports {
		for _, res := range r.Names {
			p := verifyPayload{
				Name:      res.Name,
				OK:        res.OK,
				Corrected: res.Corrected,
				Reserved:  res.Reserved.Strings(),
			}
			if r.FileSet != nil && !res.Span.IsDummy() {
				p.Pos = r.FileSet.Position(res.Span)
			}
			payload = append(payload, p)
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
