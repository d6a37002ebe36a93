package cmd

import (
	"fmt"
	"os"

	log "github.com/harlequix/bitpipe/log"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bitpipe",
	Short: "Huffman source coding plus Hamming(7,4) channel coding",
	Long: `bitpipe compresses a text with a per-run Huffman code, protects the
bitstream with Hamming(7,4) blocks, injects bit errors at a fixed
interval and recovers the original text through both decoders.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

func initConfig() {
	log.SetConfig(cfgFile)
}
