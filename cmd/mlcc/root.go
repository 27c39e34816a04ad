package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlcc",
	Short: "Multi-Layer Custom Cipher toolbox",
	Long: `mlcc encrypts and decrypts text with the three-stage MLCC cipher
(substitution → modified Vigenère → zigzag transposition), generates
random keys, and runs the cryptanalysis tools against each stage.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			return nil
		}
		cfg, err := loadSolverConfig(path)
		if err != nil {
			return err
		}
		solverCfg = cfg

		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML file with solver tuning defaults")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
}

// addInputFlags registers the mutually exclusive ciphertext sources
// shared by the analysis commands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("string", "s", "", "Input text directly")
	cmd.Flags().StringP("input-file", "i", "", "Path to input text file")
	cmd.MarkFlagsMutuallyExclusive("string", "input-file")
}

// textFromFlags resolves the input text from --string or --input-file.
func textFromFlags(cmd *cobra.Command) (string, error) {
	s, _ := cmd.Flags().GetString("string")
	if s != "" {
		return s, nil
	}
	path, _ := cmd.Flags().GetString("input-file")
	if path == "" {
		return "", errors.New("provide input via --string or --input-file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// parseIntList parses a comma-separated transposition key like "3,1,2".
func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("transposition key element %q is not an integer", p)
		}
		out = append(out, n)
	}

	return out, nil
}

// joinInts renders a transposition key back to its comma-separated form.
func joinInts(key []int) string {
	parts := make([]string, len(key))
	for i, n := range key {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

// preview truncates decoded output for terminal display.
func preview(text string, n int) string {
	if n > 0 && len(text) > n {
		return text[:n]
	}

	return text
}
