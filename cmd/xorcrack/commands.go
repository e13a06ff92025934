package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/xorcrack/internal/config"
	"github.com/provide-io/xorcrack/pkg"
	"github.com/provide-io/xorcrack/pkg/breaker"
	"github.com/provide-io/xorcrack/pkg/codec"
	"github.com/provide-io/xorcrack/pkg/logging"
	"github.com/provide-io/xorcrack/pkg/operations"
	_ "github.com/provide-io/xorcrack/pkg/operations/compress"
	_ "github.com/provide-io/xorcrack/pkg/operations/encoding"
	"github.com/provide-io/xorcrack/pkg/xor"
)

var errNoInput = errors.New("no input provided")

// globalOptions holds the persistent flags of the root command.
type globalOptions struct {
	logLevel    string
	versionFlag bool
}

// cliOptions holds the flag values of one subcommand.
type cliOptions struct {
	*globalOptions
	ciphertext   string
	file         string
	inputOps     string
	outputOps    string
	key          string
	maxKeySize   int
	sampleBlocks int
	workers      int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "xorcrack",
		Short:         "Encode, XOR and break XOR ciphertexts",
		Long:          `Convert between hex and base64, apply XOR keys and recover single-byte or repeating XOR keys from ciphertext alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.versionFlag {
				fmt.Fprint(cmd.OutOrStdout(), versionString())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&opts.versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(
		newHex2Base64Cmd(),
		newFixedXorCmd(),
		newEncryptCmd(opts),
		newDecryptCmd(opts),
		newBreakCmd(opts),
		newDetectCmd(opts),
	)
	return rootCmd
}

func newHex2Base64Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex2base64 <hex>",
		Short: "Re-encode a hex string as base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b64, err := codec.HexToBase64(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b64)
			return nil
		},
	}
}

func newFixedXorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed-xor <hex> <hex>",
		Short: "XOR two equal-length hex buffers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := pkg.DecodeHex(args[0])
			if err != nil {
				return fmt.Errorf("first buffer: %w", err)
			}
			b, err := pkg.DecodeHex(args[1])
			if err != nil {
				return fmt.Errorf("second buffer: %w", err)
			}
			out, err := xor.Fixed(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHex(out))
			return nil
		},
	}
}

func newEncryptCmd(g *globalOptions) *cobra.Command {
	opts := &cliOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt input with a repeating XOR key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(opts.ciphertext, opts.file, opts.inputOps)
			if err != nil {
				return err
			}
			out, err := xor.Encode(data, []byte(opts.key))
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, opts.outputOps)
		},
	}
	addInputFlags(cmd, opts, "raw")
	cmd.Flags().StringVar(&opts.outputOps, "output-ops", "hex", "Operations applied to the ciphertext before printing")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Repeating key (required)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(err)
	}
	return cmd
}

func newDecryptCmd(g *globalOptions) *cobra.Command {
	opts := &cliOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt input with a repeating XOR key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(opts.ciphertext, opts.file, opts.inputOps)
			if err != nil {
				return err
			}
			out, err := xor.Decode(data, []byte(opts.key))
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, opts.outputOps)
		},
	}
	addInputFlags(cmd, opts, "hex")
	cmd.Flags().StringVar(&opts.outputOps, "output-ops", "raw", "Operations applied to the plaintext before printing")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "Repeating key (required)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(err)
	}
	return cmd
}

func newBreakCmd(g *globalOptions) *cobra.Command {
	opts := &cliOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "break <single|repeating>",
		Short: "Recover the key of a single-byte or repeating XOR ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := parseMethod(args[0])
			if err != nil {
				return err
			}

			logger := newLogger(cmd, opts)
			b := breaker.NewWithLogger(breakerOptions(cmd, opts, logger), logger)

			data, err := readInput(opts.ciphertext, opts.file, opts.inputOps)
			if err != nil {
				return err
			}
			logger.Debug("📥 Read ciphertext", "bytes", len(data), "input_ops", opts.inputOps)

			switch method {
			case methodSingleByte:
				c, err := b.SingleByte(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Key: 0x%02x %q\n", c.Key, c.Key)
				fmt.Fprintln(cmd.OutOrStdout(), string(c.Plaintext))
			case methodRepeatingKey:
				key, err := b.RepeatingKey(data)
				if err != nil {
					return err
				}
				plain, err := xor.Decode(data, key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Key: %q\n", key)
				fmt.Fprintln(cmd.OutOrStdout(), string(plain))
			}
			return nil
		},
	}
	addInputFlags(cmd, opts, "raw")
	addBreakerFlags(cmd, opts)
	return cmd
}

func newDetectCmd(g *globalOptions) *cobra.Command {
	opts := &cliOptions{globalOptions: g}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Find the line of a file that was encrypted with single-byte XOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, opts)
			b := breaker.NewWithLogger(breakerOptions(cmd, opts, logger), logger)

			lines, numbers, err := readLines(opts.ciphertext, opts.file, opts.inputOps)
			if err != nil {
				return err
			}

			idx, c, err := b.Detect(lines)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Line %d, key: 0x%02x %q\n", numbers[idx], c.Key, c.Key)
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(c.Plaintext), "\n"))
			return nil
		},
	}
	addInputFlags(cmd, opts, "hex")
	return cmd
}

func addInputFlags(cmd *cobra.Command, opts *cliOptions, defaultOps string) {
	cmd.Flags().StringVarP(&opts.ciphertext, "ciphertext", "c", "", "Input given directly on the command line")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the input file")
	cmd.Flags().StringVar(&opts.inputOps, "input-ops", defaultOps, "Operations to undo on the input (e.g. base64, bzip2|base64)")
}

func addBreakerFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().IntVar(&opts.maxKeySize, "max-keysize", breaker.DefaultMaxKeySize, "Largest repeating key length to try")
	cmd.Flags().IntVar(&opts.sampleBlocks, "sample-blocks", breaker.DefaultSampleBlocks, "Blocks compared when scoring a key length")
	cmd.Flags().IntVar(&opts.workers, "workers", breaker.DefaultWorkers, "Columns broken concurrently")
}

func newLogger(cmd *cobra.Command, opts *cliOptions) hclog.Logger {
	level := opts.logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	return logging.NewLogger("xorcrack", level, cmd.ErrOrStderr())
}

// breakerOptions starts from the environment and lets explicit flags win.
func breakerOptions(cmd *cobra.Command, opts *cliOptions, logger hclog.Logger) breaker.Options {
	cfg := config.Load()
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	if cmd.Flags().Changed("max-keysize") {
		cfg.MaxKeySize = opts.maxKeySize
	}
	if cmd.Flags().Changed("sample-blocks") {
		cfg.SampleBlocks = opts.sampleBlocks
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg.BreakerOptions()
}

// readInput loads the raw input and undoes the requested operations.
func readInput(ciphertext, file, inputOps string) ([]byte, error) {
	var raw []byte
	switch {
	case ciphertext != "":
		raw = []byte(ciphertext)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		raw = data
	default:
		return nil, errNoInput
	}
	return decodeInput(raw, inputOps)
}

func decodeInput(raw []byte, inputOps string) ([]byte, error) {
	ops, err := operations.ParseChain(inputOps)
	if err != nil {
		return nil, err
	}
	data, err := operations.ReverseChain(raw, ops)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	return data, nil
}

// readLines decodes every non-empty line of the input separately. The
// returned numbers are the 1-based source line of each decoded buffer.
func readLines(ciphertext, file, inputOps string) ([][]byte, []int, error) {
	raw, err := readInput(ciphertext, file, "raw")
	if err != nil {
		return nil, nil, err
	}

	var lines [][]byte
	var numbers []int
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		data, err := decodeInput([]byte(text), inputOps)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", n, err)
		}
		lines = append(lines, data)
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, numbers, nil
}

func writeOutput(cmd *cobra.Command, data []byte, outputOps string) error {
	ops, err := operations.ParseChain(outputOps)
	if err != nil {
		return err
	}
	out, err := operations.ApplyChain(data, ops)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

type breakMethod int

const (
	methodSingleByte breakMethod = iota
	methodRepeatingKey
)

func parseMethod(name string) (breakMethod, error) {
	switch strings.ToLower(name) {
	case "single", "single-byte", "single-byte-xor":
		return methodSingleByte, nil
	case "repeating", "repeating-key", "repeating-key-xor":
		return methodRepeatingKey, nil
	default:
		return 0, fmt.Errorf("unknown break method %q (want single or repeating)", name)
	}
}
