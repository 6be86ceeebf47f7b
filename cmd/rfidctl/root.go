package main

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xebef/go-rfiddb/transport/serialport"
)

var (
	cfgFile string

	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rfidctl",
	Short: "Manage the RFID list of a serial doorlock controller",
	Long: `rfidctl uploads an RFID identifier list to an embedded doorlock
controller over a serial UART link and reads back the most recently
scanned identifier.

The list is kept in a plain text file, one "XXXXXXXX,label" entry per
line (8 hex characters of identifier, then a free-text label).

Configuration is read from rfidctl.yaml in the working directory or
~/.config/rfidctl/, overridable with flags and RFIDCTL_* environment
variables. Recognized keys: port, baud, response_timeout, data_file.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default rfidctl.yaml)")
	rootCmd.PersistentFlags().StringP("port", "p", "",
		"serial port of the device (e.g. /dev/ttyUSB0, COM3)")
	rootCmd.PersistentFlags().Int("baud", serialport.DefaultBaudRate,
		"serial baud rate")
	rootCmd.PersistentFlags().Duration("timeout", 2*time.Second,
		"maximum wait for a device response")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"enable debug logging")

	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("baud", rootCmd.PersistentFlags().Lookup("baud"))
	_ = viper.BindPFlag("response_timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("data_file", "data.txt")
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rfidctl")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/rfidctl")
	}

	viper.SetEnvPrefix("RFIDCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warnf("could not read config file: %v", err)
		}
	} else {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
}

// openPort opens the configured serial port.
func openPort() (*serialport.Port, error) {
	name := viper.GetString("port")
	if name == "" {
		return nil, errors.New("no serial port configured (use --port, the config file, or RFIDCTL_PORT)")
	}
	return serialport.Open(name, viper.GetInt("baud"))
}

// dataFile resolves the list file path: an explicit argument wins over
// the configured data_file.
func dataFile(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return viper.GetString("data_file")
}
