package cmd

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/harlequix/bitpipe/huffman"
	"github.com/harlequix/bitpipe/model"
	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes <textfile>",
	Short: "Print the symbol probabilities and Huffman code table of a text",
	RunE:  printCodes,
	Args:  cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func printCodes(cmd *cobra.Command, args []string) error {
	raw, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}

	probs := model.Probabilities(string(raw))
	codes := huffman.DeriveCodes(huffman.BuildTree(probs))

	symbols := make([]rune, 0, len(probs))
	for sym := range probs {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	fmt.Println("# symbol\tprobability\tcode")
	for _, sym := range symbols {
		fmt.Printf("%q\t%.10f\t%s\n", sym, probs[sym], codes[sym])
	}
	return nil
}
