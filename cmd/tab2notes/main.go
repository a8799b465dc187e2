// Package main is the entry point for the tab2notes CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DesigningLevers0/tab-to-notes/pkg/api"
	"github.com/DesigningLevers0/tab-to-notes/pkg/tab"
	"github.com/DesigningLevers0/tab-to-notes/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	tuningSeparator string
	transposeArg    string
	useSharps       bool
	useFlats        bool
	stringTunings   [tab.MaxStrings]string
	dropD           bool
	presetName      string
	omitOctaves     bool
	omitTechniques  bool
	chordAnalysis   bool
	serverPort      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tab2notes",
	Short: "Convert ASCII guitar tabs to note names",
	Long: `tab2notes converts text files containing ASCII tabs as used by
guitar players and the like to note names as used by e.g. saxophonists.

Examples:
  tab2notes convert riff.txt
  tab2notes convert riff.txt riff.notes.txt
  tab2notes convert -f --transpose Bb riff.txt
  tab2notes convert -c riff.txt
  tab2notes midi riff.txt
  tab2notes tui
  tab2notes serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert a tab file to note names",
	Long:  `Converts the tab file to note-name text. Without an output path the result goes to stdout.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runConvert,
}

var midiCmd = &cobra.Command{
	Use:   "midi <input> [output.mid]",
	Short: "Convert a tab file to a Standard MIDI File",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runMIDI,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in tuning presets",
	Run:   runPresets,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&tuningSeparator, "tuning-separator", "t", tab.DefaultTuningSeparator,
		"Symbol separating the tuning note name from the rest of a tab line")
	pf.StringVarP(&transposeArg, "transpose", "u", "0",
		"Transpose by a number of semitones, or an instrument key (Bb, Eb, F, A)")
	pf.BoolVarP(&useSharps, "sharps", "s", false, "Write note names with sharps (the default)")
	pf.BoolVarP(&useFlats, "flats", "f", false, "Write note names with flats")
	pf.BoolVarP(&omitOctaves, "omit-octaves", "c", false,
		"Omit octaves; string tuning is read from the tab itself")
	pf.BoolVarP(&omitTechniques, "omit-techniques", "o", false, "Omit technique glyphs from the output")
	pf.BoolVar(&chordAnalysis, "chord-analysis", false, "Add chord/interval analysis above the note output")
	pf.BoolVar(&dropD, "dropd", false, "Use drop D tuning (equivalent to --s6 D2)")
	pf.StringVar(&presetName, "preset", "", "Tuning preset (see 'tab2notes presets')")
	for i := range stringTunings {
		def := tab.StandardTuning[i]
		name := fmt.Sprintf("s%d", i+1)
		help := fmt.Sprintf("Tuning of string %d, counting from the top", i+1)
		pf.StringVar(&stringTunings[i], name, defaultTuningName(def), help)
	}
	_ = viper.BindPFlags(pf)

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func defaultTuningName(t tab.StringTuning) string {
	return tab.FormatNote(tab.ResolvedNote{PitchClass: t.PitchClass, Octave: t.Octave, HasOctave: true}, tab.Config{})
}

// initConfig reads defaults from an optional config file
// ($XDG_CONFIG_HOME/tab2notes/config.yaml) and TAB2NOTES_* environment
// variables. Explicit flags always win.
func initConfig() {
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "tab2notes"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("TAB2NOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildConfig maps the flags (and config-file defaults) to a conversion
// config. Conflicting accidental flags are rejected here, before the
// core ever runs.
func buildConfig(cmd *cobra.Command) (tab.Config, error) {
	if useSharps && useFlats {
		return tab.Config{}, fmt.Errorf("%w: both --sharps and --flats requested", tab.ErrMalformedConfig)
	}

	cfg := tab.DefaultConfig()
	cfg.TuningSeparator = viper.GetString("tuning-separator")
	cfg.Flats = useFlats || viper.GetBool("flats")
	cfg.OmitOctaves = omitOctaves || viper.GetBool("omit-octaves")
	cfg.OmitTechniques = omitTechniques || viper.GetBool("omit-techniques")
	cfg.ChordAnalysis = chordAnalysis || viper.GetBool("chord-analysis")

	transpose, err := tab.ParseTranspose(viper.GetString("transpose"))
	if err != nil {
		return tab.Config{}, err
	}
	cfg.Transpose = transpose

	if name := viper.GetString("preset"); name != "" {
		p, ok := tab.LookupPreset(name)
		if !ok {
			return tab.Config{}, fmt.Errorf("%w: unknown preset %q", tab.ErrMalformedConfig, name)
		}
		cfg.BaseTunings = p.Tunings
	}

	overrides := make(map[int]tab.StringTuning)
	pf := rootCmd.PersistentFlags()
	for i := range stringTunings {
		name := fmt.Sprintf("s%d", i+1)
		if !pf.Changed(name) && !viper.InConfig(name) {
			continue
		}
		t, err := tab.ParseStringTuning(viper.GetString(name))
		if err != nil {
			return tab.Config{}, err
		}
		overrides[i+1] = t
	}
	if dropD || viper.GetBool("dropd") {
		if _, set := overrides[6]; !set {
			overrides[6] = tab.StringTuning{PitchClass: 2, Octave: 2} // D2
		}
	}
	if len(overrides) > 0 {
		cfg.StringTunings = overrides
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	conv := tab.New(cfg)

	input := args[0]
	if len(args) > 1 {
		output := args[1]
		fmt.Printf("Converting %s -> %s\n", input, output)
		if err := conv.ConvertFile(input, output); err != nil {
			return err
		}
		fmt.Println("Conversion complete!")
		return nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	result, err := conv.ConvertString(string(data))
	if err != nil {
		return err
	}
	fmt.Print(result)
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	conv := tab.New(cfg)

	input := args[0]
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".mid"
	if len(args) > 1 {
		output = args[1]
	}

	if err := conv.ConvertFileToMIDI(input, output); err != nil {
		return err
	}
	fmt.Printf("Converted %s -> %s\n", input, output)
	return nil
}

func runPresets(cmd *cobra.Command, args []string) {
	for _, p := range tab.Presets() {
		fmt.Printf("%-10s %-14s %s\n", p.Name, p.Describe(), p.Description)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting tab2notes API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
