package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

var (
	flagVolume  float64
	flagAllowed bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show persisted settings",
	Long: `Show the settings stored in the scores database.

Examples:
  arcade settings
  arcade settings audio ChannelMusic --volume 0.5
  arcade settings audio Channel1 --allowed=false`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

var settingsAudioCmd = &cobra.Command{
	Use:   "audio <channel>",
	Short: "Change the volume or the allowed flag of an audio channel",
	Long: `Change one audio channel. Channels are Channel1, Channel2 and ChannelMusic.
Volume is linear in [0, 1].`,
	Args: cobra.ExactArgs(1),
	Run:  runSettingsAudio,
}

func init() {
	settingsAudioCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Linear volume in [0, 1]")
	settingsAudioCmd.Flags().BoolVar(&flagAllowed, "allowed", true, "Whether the channel plays at all")
	settingsCmd.AddCommand(settingsAudioCmd)
}

func openSettingsStore() *app {
	a, err := newApp(nil, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if a.store == nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: no settings database at %s\n", viper.GetString("db"))
		os.Exit(1)
	}
	return a
}

func runSettings(_ *cobra.Command, _ []string) {
	a := openSettingsStore()
	defer a.Close()

	channels, err := a.store.LoadAudio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	keys := make([]string, 0, len(channels))
	for k := range channels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("[%s]\n", storage.SectionAudio)
	for _, k := range keys {
		c := channels[k]
		fmt.Printf("  %-14s volume=%.2f allowed=%t\n", k, c.Volume, c.Allowed)
	}
}

func runSettingsAudio(cmd *cobra.Command, args []string) {
	key := args[0]
	if _, ok := channelKeys[key]; !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown audio channel %q\n", key)
		os.Exit(1)
	}

	a := openSettingsStore()
	defer a.Close()

	channels, err := a.store.LoadAudio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	c := channels[key]
	if cmd.Flags().Changed("volume") {
		if flagVolume < 0 || flagVolume > 1 {
			fmt.Fprintln(os.Stderr, "Error: volume must be within [0, 1]")
			return
		}
		c.Volume = flagVolume
	}
	if cmd.Flags().Changed("allowed") {
		c.Allowed = flagAllowed
	}

	if err := a.store.SaveAudio(key, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("%s: volume=%.2f allowed=%t\n", key, c.Volume, c.Allowed)
}
