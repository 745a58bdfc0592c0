package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voxnote/memo-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memo-api",
	Short: "Voice memo API server",
	Long: `Voice Memo API - storage and editing backend for voice memo audio

This API stores recording audio blobs, renders waveform peak series
for display, and runs non-destructive edit sessions (cut, normalize,
noise reduction) that can be previewed and committed to new exports.

Features:
  • Durable one-blob-per-recording audio storage
  • Waveform peak rendering with a server-side cache
  • Edit sessions with an append-only edit log
  • WAV, MP3 and Ogg Vorbis decoding`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
