package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c-bata/go-prompt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tty-tools/termprobe/pkg/ansi"
	"github.com/tty-tools/termprobe/pkg/input"
	"github.com/tty-tools/termprobe/pkg/term"
	"github.com/tty-tools/termprobe/pkg/validator"
)

const defaultPollTimeout = 1000

// Execute of the termprobe command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

var (
	// Used for flags.
	cfgFile     string //nolint:gochecknoglobals
	logFile     string //nolint:gochecknoglobals
	debug       bool   //nolint:gochecknoglobals
	pollTimeout int    //nolint:gochecknoglobals

	errNotATerminal = errors.New("not attached to a terminal")

	// rootCmd the termprobe command. Its stdout is a fixed contract: the
	// constant block and nothing else, so everything chatty goes to the log.
	rootCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "termprobe",
		Short: "Print the terminal-control constants this build was compiled against",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Msg("Start termprobe")

			WriteConstants(os.Stdout)

			return nil
		},
	}

	versionCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "version",
		Short: "Print the version number of termprobe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(buildCmdVersion())
		},
	}

	sizeCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "size",
		Short: "Print the window size of the attached terminal",
		Run: func(cmd *cobra.Command, args []string) {
			stdoutFd := int(os.Stdout.Fd())
			if !term.IsTerminal(stdoutFd) {
				panic(errNotATerminal)
			}

			cols, rows, errSize := term.GetSize(stdoutFd)
			if errSize != nil {
				log.Err(errSize).Msg("size")

				panic(errSize)
			}

			log.Debug().Int("cols", cols).Int("rows", rows).Msg("size")

			color.Green.Printf("==> terminal size: %d x %d (cols x rows)\n", cols, rows)
		},
	}

	attrsCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "attrs",
		Short: "Print the current termios attributes of stdin",
		Run: func(cmd *cobra.Command, args []string) {
			termios, errAttr := term.GetAttr(int(os.Stdin.Fd()))
			if errAttr != nil {
				log.Err(errAttr).Msg("attrs")

				panic(errAttr)
			}

			fmt.Printf("iflag: %#x\n", termios.Iflag)
			fmt.Printf("oflag: %#x\n", termios.Oflag)
			fmt.Printf("cflag: %#x\n", termios.Cflag)
			fmt.Printf("lflag: %#x\n", termios.Lflag)

			fmt.Printf("\ncc: %d control characters\n", len(termios.Cc))
		},
	}

	keysCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "keys",
		Short: "Decode key presses in raw mode, q quits",
		Run: func(cmd *cobra.Command, args []string) {
			if confTimeout := viper.GetInt("timeout"); pollTimeout == defaultPollTimeout && confTimeout != 0 {
				pollTimeout = confTimeout
			}

			if valid, errTimeout := validator.PollTimeout(pollTimeout); !valid {
				panic(errTimeout)
			}

			log.Debug().Int("pollTimeout", pollTimeout).Msg("keys")

			stdinFd := int(os.Stdin.Fd())
			if !term.IsTerminal(stdinFd) {
				panic(errNotATerminal)
			}

			state, errRaw := term.MakeRaw(stdinFd)
			if errRaw != nil {
				panic(errRaw)
			}

			defer state.Restore(stdinFd) //nolint:errcheck

			// put the terminal back even when interrupted
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)

			go func() {
				<-interrupts
				state.Restore(stdinFd) //nolint:errcheck
				os.Exit(1)
			}()

			fmt.Printf("press q to quit%s%s\n", ansi.StyleReset, ansi.CursorColumn(1))

			for {
				event, errPoll := input.Poll(stdinFd, time.Duration(pollTimeout)*time.Millisecond)
				if errors.Is(errPoll, input.ErrTimeout) {
					continue
				}

				if errPoll != nil {
					log.Err(errPoll).Msg("keys")

					continue
				}

				fmt.Printf("%s%s%s\n", event, ansi.StyleReset, ansi.CursorColumn(1))

				if event.Kind == input.KindKey && event.Key == input.KeyChar && event.Rune == 'q' {
					break
				}
			}
		},
	}

	reportCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "report",
		Short: "search and open termprobe reports",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("==> Please select a report:\n")
			report := prompt.Input("> ", reportCompleter)

			if report == "quit" {
				os.Exit(0)
			}

			reportFile, err := os.Open(report)
			if err != nil {
				panic(err)
			}

			defer reportFile.Close()

			var buffer bytes.Buffer

			_, err = buffer.ReadFrom(reportFile)
			if err != nil {
				panic(err)
			}

			fmt.Printf("%s\n%s\n", divider, buffer.String())
		},
	}

	cleanCmd = &cobra.Command{ //nolint:exhaustivestruct,gochecknoglobals
		Use:   "clean",
		Short: "Clean termprobe reports and logs",
		Run: func(cmd *cobra.Command, args []string) {
			inputReader := *bufio.NewReader(os.Stdin)
			scanner := GetInputWrapper{
				Scanner: inputReader,
			}

			confirmed, errConfirm := scanner.Confirm("Remove all termprobe reports and logs? [y/N]")
			if errConfirm != nil {
				panic(errConfirm)
			}

			if !confirmed {
				fmt.Printf("==> nothing removed\n")

				return
			}

			reports, _ := filepath.Glob(filepath.Join(reportDir(), "report_*.out"))
			for _, curReport := range reports {
				fmt.Printf("=> Remove report: %s\n", curReport)
				os.RemoveAll(curReport)
			}

			logFiles, _ := filepath.Glob(filepath.Join(getBaseLogDir(), "log", "*.log"))
			for _, curLog := range logFiles {
				fmt.Printf("=> Remove log: %s\n", curLog)
				os.RemoveAll(curLog)
			}

			fmt.Printf("==> termprobe env cleaned!\n")
		},
	}
)

func reportCompleter(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{}

	suggestions = append(suggestions, prompt.Suggest{
		Text: "quit", Description: "exit from report command",
	})

	matches, _ := filepath.Glob(filepath.Join(reportDir(), "report_*.out"))
	for _, match := range matches {
		suggestions = append(suggestions, prompt.Suggest{
			Text: match, Description: fmt.Sprintf("folder -> %s", filepath.Dir(match)),
		})
	}

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func setupLogger() {
	if confLog := viper.GetString("log"); logFile == "stderr" && confLog != "" {
		logFile = confLog
	}

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

		logFile = "stderr"
	}

	if logFile != "stderr" {
		if valid, errLog := validator.LogFile(logFile); !valid {
			panic(errLog)
		}

		_, errBaseDir := os.Stat(filepath.Dir(logFile))
		if errBaseDir != nil && os.IsNotExist(errBaseDir) {
			errMkdirs := os.MkdirAll(filepath.Dir(logFile), os.ModePerm)
			if errMkdirs != nil {
				panic(errMkdirs)
			}
		}

		logTarget, errOpenLog := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, fileMode)
		if errOpenLog != nil {
			panic(errOpenLog)
		}

		log.Logger = zerolog.New(logTarget).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}) // nolint:exhaustivestruct
	}

	log.Debug().Str("log file", logFile).Msg("logging")
}

func buildCmdVersion() string {
	versionString := strings.Builder{}
	versionString.WriteString(divider)
	versionString.WriteRune('\n')
	versionString.WriteString(fmt.Sprintf(" Version:\t\t%s\n", ProbeVersion))
	versionString.WriteString(fmt.Sprintf(" Git Commit:\t\t%s\n", GitCommit))
	versionString.WriteString(fmt.Sprintf(" Go Version:\t\t%s\n", runtime.Version()))
	versionString.WriteString(fmt.Sprintf(" Built Time:\t\t%s\n", BuiltTime))
	versionString.WriteString(fmt.Sprintf(" OS/Arch:\t\t%s\n", OsArch))
	versionString.WriteString(divider)

	return versionString.String()
}

func getBaseLogDir() (baseLogDir string) {
	baseLogDir, errConfDir := os.UserConfigDir()
	if errConfDir != nil {
		curDir, errAbsCurDir := filepath.Abs(filepath.Dir(os.Args[0]))
		if errAbsCurDir != nil {
			panic(errAbsCurDir)
		}

		baseLogDir = curDir
	}

	return baseLogDir
}

// init of the cobra root command and viper configuration.
func init() { //nolint: gochecknoinits
	cobra.OnInitialize(initConfig)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./config.yml", "config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "stderr",
		"where the log has to write, a file path or stderr")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "start the program in debug mode")
	keysCmd.Flags().IntVar(&pollTimeout, "timeout", defaultPollTimeout,
		"input poll timeout in milliseconds")

	errFlag := viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))
	if errFlag != nil {
		panic(errFlag)
	}

	errFlag = viper.BindPFlag("timeout", keysCmd.Flags().Lookup("timeout"))
	if errFlag != nil {
		panic(errFlag)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	home, err := homedir.Dir()
	if err != nil {
		panic(err)
	}

	viper.AddConfigPath(path.Join(home, ".termprobe"))
	viper.AddConfigPath(".")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(attrsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cleanCmd)
}

// initConfig of viper.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		if _, err := os.Stat(cfgFile); err == nil || os.IsExist(err) {
			viper.SetConfigFile(cfgFile)
		} else {
			cfgFile = ""
		}
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("using config file")
	}
}
