package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/telldus-live/internal/pkg/tellduslive"
)

var _dumpCmdOpts struct {
	publicKey   string
	privateKey  string
	token       string
	tokenSecret string
	showProfile bool
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the account's devices, sensors and sensor data items",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doDump(); err != nil {
			return err
		}

		return nil
	},

	PreRunE: func(cmd *cobra.Command, args []string) error {
		return checkRequiredFlags("telldus.public-key", "telldus.private-key",
			"telldus.token", "telldus.token-secret")
	},
}

func init() {
	dumpCmd.Flags().StringVar(&_dumpCmdOpts.publicKey, "public-key", "", "OAuth public key from the Telldus Live API portal")
	dumpCmd.Flags().StringVar(&_dumpCmdOpts.privateKey, "private-key", "", "OAuth private key from the Telldus Live API portal")
	dumpCmd.Flags().StringVar(&_dumpCmdOpts.token, "token", "", "OAuth access token")
	dumpCmd.Flags().StringVar(&_dumpCmdOpts.tokenSecret, "token-secret", "", "OAuth access token secret")
	dumpCmd.Flags().BoolVar(&_dumpCmdOpts.showProfile, "profile", false, "also print the account profile")

	errPanic(viper.GetViper().BindPFlag("telldus.public-key", dumpCmd.Flags().Lookup("public-key")))
	errPanic(viper.GetViper().BindPFlag("telldus.private-key", dumpCmd.Flags().Lookup("private-key")))
	errPanic(viper.GetViper().BindPFlag("telldus.token", dumpCmd.Flags().Lookup("token")))
	errPanic(viper.GetViper().BindPFlag("telldus.token-secret", dumpCmd.Flags().Lookup("token-secret")))

	rootCmd.AddCommand(dumpCmd)
}

func doDump() error {
	transport := tellduslive.NewLiveTransport(tellduslive.Credentials{
		PublicKey:   viper.GetString("telldus.public-key"),
		PrivateKey:  viper.GetString("telldus.private-key"),
		Token:       viper.GetString("telldus.token"),
		TokenSecret: viper.GetString("telldus.token-secret"),
	})

	client := tellduslive.New(transport)
	if err := client.Refresh(); err != nil {
		return err
	}

	if _dumpCmdOpts.showProfile {
		if profile, ok := client.Profile(); ok {
			fmt.Printf("Account: %s %s <%s>\n\n", profile.FirstName, profile.LastName, profile.Email)
		}
	}

	fmt.Println("Devices")
	fmt.Println("-------")
	for device := range client.Devices() {
		fmt.Println(device)
	}

	fmt.Println()
	fmt.Println("Sensors")
	fmt.Println("-------")
	for sensor := range client.Sensors() {
		fmt.Println(sensor)
	}

	fmt.Println()
	fmt.Println("Data items")
	fmt.Println("----------")
	for item := range client.SensorDataItems() {
		fmt.Println(item)
	}

	return nil
}
