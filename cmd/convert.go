package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/qtigen/internal/llm"
	"github.com/abhisek/qtigen/internal/qti"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert text, a link, or a document to QTI XML",
}

var convertTextCmd = &cobra.Command{
	Use:   "text [TEXT...]",
	Short: "Extract questions from text",
	Long:  "Extract questions from text given as arguments, read from --input, or piped on stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		text, err := readTextInput(args, inputPath, stdinIfPiped())
		if err != nil {
			return err
		}
		return runConvert(cmd, qti.TextRequest{Text: text})
	},
}

var convertLinkCmd = &cobra.Command{
	Use:   "link URL",
	Short: "Generate questions about a web page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := checkLink(args[0])
		if err != nil {
			return err
		}
		return runConvert(cmd, qti.LinkRequest{URL: link})
	},
}

var convertFileCmd = &cobra.Command{
	Use:   "file PATH",
	Short: "Extract or generate questions from a PDF or image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		att, err := loadAttachment(args[0])
		if err != nil {
			return err
		}
		return runConvert(cmd, qti.FileRequest{Attachment: att})
	},
}

// runConvert performs one conversion and writes the XML to --output.
func runConvert(cmd *cobra.Command, req qti.Request) error {
	output, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	strict, _ := cmd.Flags().GetBool("strict")

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	provider, cfg, err := loadProvider(ctx)
	if err != nil {
		return err
	}

	xml, elapsed, err := convert(ctx, provider, req, strict)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if output == "" || output == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), xml)
		printOK(stderr, "%s conversion with %s done in %s", req.Mode(), cfg.Model(), elapsed.Round(time.Millisecond))
		return nil
	}

	if err := os.WriteFile(output, []byte(xml+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printOK(stderr, "wrote %d bytes to %s in %s", len(xml)+1, output, elapsed.Round(time.Millisecond))
	return nil
}

// convert runs req through a Converter built on provider.
func convert(ctx context.Context, provider llm.Provider, req qti.Request, strict bool) (string, time.Duration, error) {
	qcfg := qti.DefaultConfig()
	if strict {
		qcfg = qti.StrictConfig()
	}
	qcfg.Logger = slog.Default()

	start := time.Now()
	out, err := qti.New(provider, qcfg).Convert(ctx, req)
	return out, time.Since(start), err
}

func init() {
	convertCmd.PersistentFlags().StringP("output", "o", "", "Write the XML to this file instead of stdout")
	convertCmd.PersistentFlags().Duration("timeout", 2*time.Minute, "Abort the conversion after this long (0 disables)")
	convertCmd.PersistentFlags().Bool("strict", false, "Reject output that is not well-formed XML")

	convertTextCmd.Flags().StringP("input", "i", "", "Read text from this file (- for stdin)")

	convertCmd.AddCommand(convertTextCmd)
	convertCmd.AddCommand(convertLinkCmd)
	convertCmd.AddCommand(convertFileCmd)
}
