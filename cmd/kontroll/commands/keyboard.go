// Package commands contains all CLI command definitions for kontroll.
package commands

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List keyboards detected by the controller",
	Long:  "Print one line per detected keyboard as '<id>: <name>', marking the connected one.",
	Args:  cobra.NoArgs,
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a keyboard by id",
	Long:  "Bind the controller session to the keyboard with the given id as shown by 'kontroll list'.",
	Args:  cobra.NoArgs,
}

var connectAnyCmd = &cobra.Command{
	Use:   "connect-any",
	Short: "Connect to the first keyboard detected",
	Args:  cobra.NoArgs,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect from the currently connected keyboard",
	Args:  cobra.NoArgs,
}

var setLayerCmd = &cobra.Command{
	Use:   "set-layer",
	Short: "Switch the connected keyboard to a layer",
	Args:  cobra.NoArgs,
}

var setRGBCmd = &cobra.Command{
	Use:   "set-rgb",
	Short: "Set the color of one RGB LED",
	Long: `Set the color of one RGB LED on the connected keyboard.

The color is 6 hex digits (RRGGBB), optionally prefixed with '#'.
With --sustain the previous color returns after that many milliseconds;
0 keeps the new color.`,
	Args: cobra.NoArgs,
}

var setRGBAllCmd = &cobra.Command{
	Use:   "set-rgb-all",
	Short: "Set the color of every RGB LED",
	Args:  cobra.NoArgs,
}

var setStatusLEDCmd = &cobra.Command{
	Use:   "set-status-led",
	Short: "Turn a status LED on or off",
	Long:  "Turn a status LED on, or off with --off. With --sustain the previous state returns after that many milliseconds.",
	Args:  cobra.NoArgs,
}

var increaseBrightnessCmd = &cobra.Command{
	Use:   "increase-brightness",
	Short: "Step RGB brightness up once",
	Args:  cobra.NoArgs,
}

var decreaseBrightnessCmd = &cobra.Command{
	Use:   "decrease-brightness",
	Short: "Step RGB brightness down once",
	Args:  cobra.NoArgs,
}

// SetupKeyboardFlags binds per-command flags to their storage.
func SetupKeyboardFlags(indexPtr, ledPtr *uint, colorPtr *string, sustainPtr *int32, offPtr *bool) {
	connectCmd.Flags().UintVarP(indexPtr, "index", "i", 0, "Keyboard id as shown by 'kontroll list'")
	_ = connectCmd.MarkFlagRequired("index")

	setLayerCmd.Flags().UintVarP(indexPtr, "index", "i", 0, "Layer index")
	_ = setLayerCmd.MarkFlagRequired("index")

	setRGBCmd.Flags().UintVarP(ledPtr, "led", "l", 0, "LED index")
	setRGBCmd.Flags().StringVarP(colorPtr, "color", "c", "", "Color as RRGGBB hex")
	setRGBCmd.Flags().Int32VarP(sustainPtr, "sustain", "s", 0, "Milliseconds before the previous color returns (0 holds)")
	_ = setRGBCmd.MarkFlagRequired("led")
	_ = setRGBCmd.MarkFlagRequired("color")

	setRGBAllCmd.Flags().StringVarP(colorPtr, "color", "c", "", "Color as RRGGBB hex")
	setRGBAllCmd.Flags().Int32VarP(sustainPtr, "sustain", "s", 0, "Milliseconds before the previous colors return (0 holds)")
	_ = setRGBAllCmd.MarkFlagRequired("color")

	setStatusLEDCmd.Flags().UintVarP(ledPtr, "led", "l", 0, "Status LED index")
	setStatusLEDCmd.Flags().BoolVarP(offPtr, "off", "o", false, "Turn the LED off instead of on")
	setStatusLEDCmd.Flags().Int32VarP(sustainPtr, "sustain", "s", 0, "Milliseconds before the previous state returns (0 holds)")
	_ = setStatusLEDCmd.MarkFlagRequired("led")
}

// KeyboardCommands groups the command references for handler assignment.
type KeyboardCommands struct {
	List               *cobra.Command
	Connect            *cobra.Command
	ConnectAny         *cobra.Command
	Disconnect         *cobra.Command
	SetLayer           *cobra.Command
	SetRGB             *cobra.Command
	SetRGBAll          *cobra.Command
	SetStatusLED       *cobra.Command
	IncreaseBrightness *cobra.Command
	DecreaseBrightness *cobra.Command
}

// GetKeyboardCommands returns the keyboard command structures for handler assignment
func GetKeyboardCommands() KeyboardCommands {
	return KeyboardCommands{
		List:               listCmd,
		Connect:            connectCmd,
		ConnectAny:         connectAnyCmd,
		Disconnect:         disconnectCmd,
		SetLayer:           setLayerCmd,
		SetRGB:             setRGBCmd,
		SetRGBAll:          setRGBAllCmd,
		SetStatusLED:       setStatusLEDCmd,
		IncreaseBrightness: increaseBrightnessCmd,
		DecreaseBrightness: decreaseBrightnessCmd,
	}
}
