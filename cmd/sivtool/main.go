// Command sivtool is a thin demonstration front end over package siv: it
// contains no cryptographic logic of its own, only flag parsing, hex
// decoding, and TOML-based key-profile lookup.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberforge/siv"
)

const (
	flagConfig    = "config"
	flagProfile   = "profile"
	flagCtrKeyHex = "ctr-key"
	flagMacKeyHex = "mac-key"
	flagAD        = "ad"
	flagHex       = "hex"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sivtool",
		Short:         "Seal and open messages with RFC 5297 SIV authenticated encryption",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(sealCmd(), openCmd())
	return root
}

func sealCmd() *cobra.Command {
	var configPath, profile, ctrKeyHex, macKeyHex, plaintextHex string
	var ad []string

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Seal a hex-encoded plaintext, printing hex-encoded iv||ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrKey, macKey, err := resolveKeys(configPath, profile, ctrKeyHex, macKeyHex)
			if err != nil {
				return err
			}

			plaintext, err := hex.DecodeString(plaintextHex)
			if err != nil {
				return fmt.Errorf("sivtool: decoding --hex: %w", err)
			}

			ctx, err := siv.New(siv.AES())
			if err != nil {
				return err
			}

			ciphertext, err := ctx.Seal(ctrKey, macKey, plaintext, hexList(ad)...)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(ciphertext))
			return nil
		},
	}

	addKeyFlags(cmd, &configPath, &profile, &ctrKeyHex, &macKeyHex)
	cmd.Flags().StringVar(&plaintextHex, flagHex, "", "hex-encoded plaintext")
	cmd.Flags().StringArrayVar(&ad, flagAD, nil, "hex-encoded associated-data field, repeatable and order-significant")
	return cmd
}

func openCmd() *cobra.Command {
	var configPath, profile, ctrKeyHex, macKeyHex, inputHex string
	var ad []string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a hex-encoded iv||ciphertext, printing hex-encoded plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrKey, macKey, err := resolveKeys(configPath, profile, ctrKeyHex, macKeyHex)
			if err != nil {
				return err
			}

			in, err := hex.DecodeString(inputHex)
			if err != nil {
				return fmt.Errorf("sivtool: decoding --hex: %w", err)
			}

			ctx, err := siv.New(siv.AES())
			if err != nil {
				return err
			}

			plaintext, err := ctx.Open(ctrKey, macKey, in, hexList(ad)...)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(plaintext))
			return nil
		},
	}

	addKeyFlags(cmd, &configPath, &profile, &ctrKeyHex, &macKeyHex)
	cmd.Flags().StringVar(&inputHex, flagHex, "", "hex-encoded iv||ciphertext")
	cmd.Flags().StringArrayVar(&ad, flagAD, nil, "hex-encoded associated-data field, repeatable and order-significant")
	return cmd
}

func addKeyFlags(cmd *cobra.Command, configPath, profile, ctrKeyHex, macKeyHex *string) {
	cmd.Flags().StringVar(configPath, flagConfig, "", "path to a TOML key-profile file")
	cmd.Flags().StringVar(profile, flagProfile, "", "profile name to load from --config")
	cmd.Flags().StringVar(ctrKeyHex, flagCtrKeyHex, "", "hex-encoded CTR key (overrides --profile)")
	cmd.Flags().StringVar(macKeyHex, flagMacKeyHex, "", "hex-encoded MAC key (overrides --profile)")
}

func resolveKeys(configPath, profile, ctrKeyHex, macKeyHex string) (ctrKey, macKey []byte, err error) {
	if ctrKeyHex == "" || macKeyHex == "" {
		if configPath == "" || profile == "" {
			return nil, nil, fmt.Errorf("sivtool: provide both --%s/--%s or both --%s and --%s", flagCtrKeyHex, flagMacKeyHex, flagConfig, flagProfile)
		}
		p, err := loadProfile(configPath, profile)
		if err != nil {
			return nil, nil, err
		}
		if ctrKeyHex == "" {
			ctrKeyHex = p.CtrKeyHex
		}
		if macKeyHex == "" {
			macKeyHex = p.MacKeyHex
		}
	}

	ctrKey, err = hex.DecodeString(ctrKeyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("sivtool: decoding CTR key: %w", err)
	}
	macKey, err = hex.DecodeString(macKeyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("sivtool: decoding MAC key: %w", err)
	}
	return ctrKey, macKey, nil
}

func hexList(fields []string) [][]byte {
	out := make([][]byte, 0, len(fields))
	for _, f := range fields {
		b, err := hex.DecodeString(f)
		if err != nil {
			// Flag parsing happens before this point in every call site;
			// an invalid --ad value surfaces to the user as plain bytes
			// rather than aborting the whole command.
			b = []byte(f)
		}
		out = append(out, b)
	}
	return out
}
