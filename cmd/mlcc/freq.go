package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mlcc/alphabet"
	"github.com/katalvlaran/mlcc/attack"
)

const histogramWidth = 40

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Letter frequency report with a suggested cipher→plain mapping",
	RunE: func(cmd *cobra.Command, _ []string) error {
		text, err := textFromFlags(cmd)
		if err != nil {
			return err
		}

		freqs, err := attack.Frequencies(text)
		if err != nil {
			return err
		}

		top, _ := cmd.Flags().GetInt("top")
		if top > 0 && top < len(freqs) {
			freqs = freqs[:top]
		}

		printFrequencyReport(freqs)

		if noGuess, _ := cmd.Flags().GetBool("no-guess"); noGuess {
			return nil
		}
		mapping, err := attack.SuggestMapping(text)
		if err != nil {
			return err
		}
		printMapping(mapping)

		if path, _ := cmd.Flags().GetString("output-mapping"); path != "" {
			asJSON, _ := cmd.Flags().GetBool("json")
			if err = saveMapping(mapping, path, asJSON); err != nil {
				return err
			}
			fmt.Println("Saved suggested mapping to:", path)
		}

		if show, _ := cmd.Flags().GetBool("show-decode"); show {
			n, _ := cmd.Flags().GetInt("sample-length")
			sample := preview(alphabet.Clean(text), n)
			fmt.Println("\nSample decode (heuristic):")
			fmt.Println(attack.ApplyMapping(sample, mapping))
		}

		return nil
	},
}

func printFrequencyReport(freqs []attack.LetterFreq) {
	out := termenv.NewOutput(os.Stdout)

	fmt.Println("Letter |  Count |   Freq | Bar")
	fmt.Println("-------+--------+--------+----" + strings.Repeat("-", histogramWidth))
	for _, f := range freqs {
		filled := int(f.Frequency*histogramWidth + 0.5)
		if filled > histogramWidth {
			filled = histogramWidth
		}
		bar := out.String(strings.Repeat("#", filled)).Foreground(out.Color("6")).String() +
			strings.Repeat("-", histogramWidth-filled)
		fmt.Printf("     %c | %6d | %6.4f | %s\n", f.Letter, f.Count, f.Frequency, bar)
	}
}

func printMapping(mapping map[byte]byte) {
	letters := make([]int, 0, len(mapping))
	for c := range mapping {
		letters = append(letters, int(c))
	}
	sort.Ints(letters)

	fmt.Println("\nSuggested mapping (cipher → guessed plain):")
	for _, c := range letters {
		fmt.Printf("  %c -> %c\n", byte(c), mapping[byte(c)])
	}
}

func saveMapping(mapping map[byte]byte, path string, asJSON bool) error {
	var data []byte
	if asJSON {
		m := make(map[string]string, len(mapping))
		for c, p := range mapping {
			m[string(c)] = string(p)
		}
		var err error
		if data, err = json.MarshalIndent(m, "", "  "); err != nil {
			return err
		}
	} else {
		var b strings.Builder
		letters := make([]int, 0, len(mapping))
		for c := range mapping {
			letters = append(letters, int(c))
		}
		sort.Ints(letters)
		for _, c := range letters {
			fmt.Fprintf(&b, "%c -> %c\n", byte(c), mapping[byte(c)])
		}
		data = []byte(b.String())
	}

	return os.WriteFile(path, data, 0o644)
}

func init() {
	addInputFlags(freqCmd)
	freqCmd.Flags().Int("top", 0, "Show only the top N letters (0 = all)")
	freqCmd.Flags().Bool("no-guess", false, "Skip the suggested mapping")
	freqCmd.Flags().Bool("show-decode", false, "Show a sample decode under the suggested mapping")
	freqCmd.Flags().Int("sample-length", 400, "Sample decode preview length")
	freqCmd.Flags().String("output-mapping", "", "Save the suggested mapping to this path")
	freqCmd.Flags().Bool("json", false, "Save the mapping as JSON (with --output-mapping)")
	rootCmd.AddCommand(freqCmd)
}
